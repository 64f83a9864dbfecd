package settings

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
)

type Settings struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Output   string `json:"output"`
}

func LoadSettings() *Settings {
	var settings Settings

	cwd, err := os.Getwd()
	if err != nil {
		log.Print(err)
	}

	settingsPath := filepath.Join(cwd, "settings.json")

	// settings.json is optional; absence is not worth reporting
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return &settings
	}
	jsonFile, err := os.Open(settingsPath)

	if err != nil {
		log.Print(err)
	}

	byteValue, _ := ioutil.ReadAll(jsonFile)

	json.Unmarshal(byteValue, &settings)
	defer jsonFile.Close()
	return &settings
}
