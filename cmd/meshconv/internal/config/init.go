package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"text/template"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	meshconfig "github.com/rbxasset/meshconv/cmd/meshconv/config/mesh"
	placeconfig "github.com/rbxasset/meshconv/cmd/meshconv/config/place"
)

const configPathFlag = "path"

var initCMD = &cobra.Command{
	Use:   "init",
	Short: "Create a new configuration file",
	Args:  cobra.NoArgs,
	RunE:  initConfig,
}

func init() {
	initCMD.Flags().String(configPathFlag, "", "Path to config (default ~/.config/meshconv/config.yaml)")
}

type configTemplate struct {
	CachePath      string
	Workers        int
	MeshVersion    string
	AssetURLFormat string
}

const configTxtTemplate = `logger:
  level: info  # Logging level

cache:
  enabled: true  # Reuse finished conversions between runs
  path: {{ .CachePath }}  # Path to the cache database
  compression: true  # Compress cached payloads

batch:
  workers: {{ .Workers }}  # Number of concurrent conversions

mesh:
  version: "{{ .MeshVersion }}"  # Mesh container version of produced files

place:
  asset_url_format: {{ .AssetURLFormat }}  # URL prefix for rewritten asset references
`

func initConfig(cmd *cobra.Command, _ []string) error {
	configPath, err := readConfigPathFromArgs(cmd)
	if err != nil {
		return err
	}

	pathDir := filepath.Dir(configPath)
	err = os.MkdirAll(pathDir, 0700)
	if err != nil {
		return fmt.Errorf("create dir %s: %w", pathDir, err)
	}

	f, err := os.OpenFile(configPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC|os.O_SYNC, 0600)
	if err != nil {
		return fmt.Errorf("open %s: %w", configPath, err)
	}
	defer f.Close()

	text, err := generateConfigExample()
	if err != nil {
		return err
	}

	_, err = f.WriteString(text)
	if err != nil {
		return fmt.Errorf("writing to %s: %w", configPath, err)
	}

	cmd.Printf("Initial config file saved to %s\n", configPath)
	return nil
}

func readConfigPathFromArgs(cmd *cobra.Command) (string, error) {
	configPath, err := cmd.Flags().GetString(configPathFlag)
	if err != nil {
		return "", err
	}
	if configPath != "" {
		return configPath, nil
	}
	return defaultConfigPath()
}

func defaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("getting home dir path: %w", err)
	}

	return filepath.Join(home, ".config", "meshconv", "config.yaml"), nil
}

func generateConfigExample() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("getting home dir path: %w", err)
	}

	tmpl := configTemplate{
		CachePath:      filepath.Join(home, ".cache", "meshconv", "cache.db"),
		Workers:        runtime.NumCPU(),
		MeshVersion:    meshconfig.VersionDefault,
		AssetURLFormat: placeconfig.AssetURLFormatDefault,
	}

	t, err := template.New("config.yaml").Parse(configTxtTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing config template: %w", err)
	}

	buf := bytes.NewBuffer(nil)

	err = t.Execute(buf, tmpl)
	if err != nil {
		return "", fmt.Errorf("generating config from template: %w", err)
	}

	return buf.String(), nil
}
