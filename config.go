// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cybrota/tangler/tangle"
	"gopkg.in/yaml.v3"
)

const configFileName = ".tangler.yaml"

type PartConfig struct {
	Name   string        `yaml:"name"`
	Input  string        `yaml:"input"`
	Policy tangle.Policy `yaml:"policy"`
}

type QuestConfig struct {
	Title string       `yaml:"title"`
	Parts []PartConfig `yaml:"parts"`
}

type OutputConfig struct {
	CopyToClipboard bool `yaml:"copy_to_clipboard"`
	ShowProgress    bool `yaml:"show_progress"`
}

type Config struct {
	Quest  QuestConfig  `yaml:"quest"`
	Output OutputConfig `yaml:"output"`
}

var defaultConfig = Config{
	Quest: QuestConfig{
		Title: "Quest 2: Tangled Trees",
		Parts: []PartConfig{
			{Name: "part 1", Input: "everybody_codes_e1_q02_p1.txt", Policy: tangle.PolicyNode},
			{Name: "part 2", Input: "everybody_codes_e1_q02_p2.txt", Policy: tangle.PolicyNode},
			{Name: "part 3", Input: "everybody_codes_e1_q02_p3.txt", Policy: tangle.PolicySubtree},
		},
	},
	Output: OutputConfig{
		CopyToClipboard: false,
		ShowProgress:    false,
	},
}

// LoadConfig reads ~/.tangler.yaml, falling back to the defaults when the
// file is missing or unreadable.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return &defaultConfig, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return &defaultConfig, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
	}
	if len(config.Quest.Parts) == 0 {
		config.Quest.Parts = defaultConfig.Quest.Parts
	}
	if config.Quest.Title == "" {
		config.Quest.Title = defaultConfig.Quest.Title
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("🔧 Tangler Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("🌳 %s%s%s\n", Green, config.Quest.Title, Reset)
	for _, part := range config.Quest.Parts {
		fmt.Printf("  • %s%s%s: %s (policy: %s)\n", Green, part.Name, Reset, part.Input, part.Policy)
	}

	fmt.Printf("\n📤 %sOutput:%s\n", Green, Reset)
	fmt.Printf("  • %scopy_to_clipboard%s: %t\n", Green, Reset, config.Output.CopyToClipboard)
	fmt.Printf("  • %sshow_progress%s: %t\n\n", Green, Reset, config.Output.ShowProgress)

	fmt.Printf("💡 Input paths are resolved against the directory given to `tangler quest --dir`.\n")
	return nil
}
