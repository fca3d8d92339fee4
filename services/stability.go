package services

import (
	"QuickBlog/configs"
	"QuickBlog/consts"
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// GenerateThumbnail gọi Stability sinh ảnh thumbnail từ prompt và trả về
// data URI base64 cho client, giống hành vi backend cũ.
func GenerateThumbnail(ctx context.Context, prompt string) (string, error) {
	apiKey := configs.GetStabilityAPIKey()
	if apiKey == "" {
		return "", consts.ErrStabilityKeyMissing
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	_ = writer.WriteField("prompt", fmt.Sprintf("Professional blog thumbnail, cinematic style, for: %q", prompt))
	_ = writer.WriteField("output_format", "jpeg")
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, configs.GetStabilityURL(), body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "image/*")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%d: %s", resp.StatusCode, string(data))
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}
