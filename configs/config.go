package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var mpConfig map[string]interface{}

func LoadFileConfig() {
	_ = godotenv.Load()
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}

	filePath := fmt.Sprintf("configs/config.%s.yaml", env)
	data, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatal("Lỗi đọc file", err)
	}

	//Thay biến môi trường trong file YAML bằng giá trị thực tế.
	expandedYaml := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expandedYaml), &mpConfig); err != nil {
		log.Fatal("Lỗi parsing YAML:", err)
		return
	}

	fmt.Println("Config thành công")
}

func GetServerPort() string {
	server := mpConfig["server"].(map[string]interface{})
	return fmt.Sprintf("%v", server["port"])
}

func GetServerDomain() string {
	server := mpConfig["server"].(map[string]interface{})
	return fmt.Sprintf("%v", server["domain"])
}

func GetDatabaseURI() string {
	db := mpConfig["database"].(map[string]interface{})
	return fmt.Sprintf("%v", db["uri"])
}

func GetDatabaseName() string {
	db := mpConfig["database"].(map[string]interface{})
	return fmt.Sprintf("%v", db["name"])
}

func GetJWTSecret() string {
	jwt := mpConfig["jwt"].(map[string]interface{})
	return fmt.Sprintf("%v", jwt["secret_key"])
}

func GetJWTIssuer() string {
	jwt := mpConfig["jwt"].(map[string]interface{})
	return fmt.Sprintf("%v", jwt["issuer"])
}

func GetJWTAccessExp() int {
	jwt := mpConfig["jwt"].(map[string]interface{})
	return int(jwt["jwt_access_token_expiration_time"].(int))
}

func GetJWTRefreshExp() int {
	jwt := mpConfig["jwt"].(map[string]interface{})
	return int(jwt["jwt_refresh_token_expiration_time"].(int))
}

func GetRedisAddr() string {
	redis := mpConfig["redis"].(map[string]interface{})
	return fmt.Sprintf("%v", redis["addr"])
}

func GetRedisPassword() string {
	redis := mpConfig["redis"].(map[string]interface{})
	return fmt.Sprintf("%v", redis["password"])
}

func GetRedisDB() int {
	redis := mpConfig["redis"].(map[string]interface{})
	return int(redis["db"].(int))
}

func GetCloudinaryName() string {
	cloud := mpConfig["cloudinary"].(map[string]interface{})
	return fmt.Sprintf("%v", cloud["cloud_name"])
}

func GetCloudinaryKey() string {
	cloud := mpConfig["cloudinary"].(map[string]interface{})
	return fmt.Sprintf("%v", cloud["api_key"])
}

func GetCloudinarySecret() string {
	cloud := mpConfig["cloudinary"].(map[string]interface{})
	return fmt.Sprintf("%v", cloud["api_secret"])
}

func GetCloudinaryFolder() string {
	cloud := mpConfig["cloudinary"].(map[string]interface{})
	return fmt.Sprintf("%v", cloud["upload_folder"])
}

func GetGeminiAPIKey() string {
	gemini := mpConfig["gemini"].(map[string]interface{})
	return fmt.Sprintf("%v", gemini["api_key"])
}

func GetGeminiBaseURL() string {
	gemini := mpConfig["gemini"].(map[string]interface{})
	return fmt.Sprintf("%v", gemini["base_url"])
}

func GetGeminiModel() string {
	gemini := mpConfig["gemini"].(map[string]interface{})
	return fmt.Sprintf("%v", gemini["model"])
}

func GetStabilityAPIKey() string {
	stability := mpConfig["stability"].(map[string]interface{})
	return fmt.Sprintf("%v", stability["api_key"])
}

func GetStabilityURL() string {
	stability := mpConfig["stability"].(map[string]interface{})
	return fmt.Sprintf("%v", stability["url"])
}

func GetAdminEmail() string {
	admin := mpConfig["admin"].(map[string]interface{})
	return fmt.Sprintf("%v", admin["email"])
}

func GetAdminPasswordHash() string {
	admin := mpConfig["admin"].(map[string]interface{})
	return fmt.Sprintf("%v", admin["password_hash"])
}

func GetCORSAllowOrigins() string {
	cors := mpConfig["cors"].(map[string]interface{})
	return fmt.Sprintf("%v", cors["allow_origins"])
}

func GetMaxBodySize() int {
	upload := mpConfig["upload"].(map[string]interface{})
	return upload["max_body_size"].(int)
}

func GetCommentSweepMinutes() int {
	jobs := mpConfig["jobs"].(map[string]interface{})
	target := jobs["comment_sweep"].(map[string]interface{})
	return target["interval_minutes"].(int)
}
