package main

import (
	"QuickBlog/configs"
	"QuickBlog/database"
	"QuickBlog/jobs"
	"QuickBlog/routers"
	"QuickBlog/utils"
	"fmt"
)

func main() {
	configs.LoadFileConfig()
	//Kết nối đến database
	err := database.ConnectMongo()
	if err != nil {
		fmt.Println(err)
	}
	//Kết nối đến redis
	err = database.ConnectRedis()
	if err != nil {
		fmt.Println(err)
	}
	//Kết nối với cloudinary
	err = utils.InitCloudinary()
	if err != nil {
		fmt.Println(err)
	}
	//Job dọn các comment mồ côi
	go jobs.StartCommentSweeper()
	//Đăng ký router
	if err := routers.SetupRouter(); err != nil {
		fmt.Printf("Server chạy thất bại: %v\n", err)
	}
}
