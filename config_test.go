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
	"os"
	"path/filepath"
	"testing"

	"github.com/cybrota/tangler/tangle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromMissingFile(t *testing.T) {
	config, err := loadConfigFrom(filepath.Join(t.TempDir(), configFileName))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	content := `quest:
  title: Practice
  parts:
    - name: warmup
      input: sample.txt
      policy: Subtree
output:
  copy_to_clipboard: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := loadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "Practice", config.Quest.Title)
	require.Len(t, config.Quest.Parts, 1)
	assert.Equal(t, PartConfig{Name: "warmup", Input: "sample.txt", Policy: tangle.PolicySubtree}, config.Quest.Parts[0])
	assert.True(t, config.Output.CopyToClipboard)
	assert.False(t, config.Output.ShowProgress)
}

func TestLoadConfigFromFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("output:\n  show_progress: true\n"), 0644))

	config, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig.Quest, config.Quest)
	assert.True(t, config.Output.ShowProgress)
}

func TestLoadConfigFromRejectsUnknownPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("quest:\n  parts:\n    - policy: sideways\n"), 0644))

	_, err := loadConfigFrom(path)
	require.ErrorIs(t, err, tangle.ErrUnknownPolicy)
}

func TestCreateDefaultConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, createDefaultConfigFile(path))

	config, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}
