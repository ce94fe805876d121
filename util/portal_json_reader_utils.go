package util

import (
	"encoding/json"
	"fmt"
	"os"

	"portal-server/models"
)

// ReadFreeRoomsResponseFromJSON loads a FreeRoomsResponse from JSON on disk.
func ReadFreeRoomsResponseFromJSON(filePath string) (*models.FreeRoomsResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.FreeRoomsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal FreeRoomsResponse: %w", err)
	}
	return &resp, nil
}

// ReadExamsResponseFromJSON loads an ExamsResponse from JSON on disk.
func ReadExamsResponseFromJSON(filePath string) (*models.ExamsResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.ExamsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ExamsResponse: %w", err)
	}
	return &resp, nil
}
