package util

import (
	"fmt"
	"io/ioutil"
)

// ReadTextFile loads a text file from disk.
func ReadTextFile(filePath string) (string, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	return string(data), nil
}
