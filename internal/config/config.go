package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName 配置文件名
const FileName = "meantree.toml"

// DefaultRuntime 生成代码默认依赖的运行时包
const DefaultRuntime = "github.com/tangzhangming/meantree/pkg/meaning"

// Config meantree 项目配置
type Config struct {
	Project ProjectConfig `toml:"project"`
	Output  OutputConfig  `toml:"output"`
}

// ProjectConfig 项目配置
type ProjectConfig struct {
	Package string `toml:"package"` // 声明文件未写 package 时使用
	Arena   string `toml:"arena"`   // 声明文件未写 arena 时使用
	Runtime string `toml:"runtime"` // 运行时包的导入路径
}

// OutputConfig 输出配置
type OutputConfig struct {
	Dir        string `toml:"dir"`         // 输出目录，相对于配置文件所在目录
	Suffix     string `toml:"suffix"`      // 生成文件的后缀，如 "_mt.go"
	FixImports *bool  `toml:"fix_imports"` // 是否用 goimports 整理导入
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	fix := true
	return &Config{
		Project: ProjectConfig{
			Package: "model",
			Arena:   "Arena",
			Runtime: DefaultRuntime,
		},
		Output: OutputConfig{
			Dir:        "",
			Suffix:     "_mt.go",
			FixImports: &fix,
		},
	}
}

// ShouldFixImports 返回是否整理导入
func (c *Config) ShouldFixImports() bool {
	return c.Output.FixImports == nil || *c.Output.FixImports
}

// FindAndLoad 从指定目录向上查找 meantree.toml 并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 meantree.toml
func FindConfigFile(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		dir = startDir
	}

	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件，未设置的键取默认值
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	def := DefaultConfig()
	if config.Project.Package == "" {
		config.Project.Package = def.Project.Package
	}
	if config.Project.Arena == "" {
		config.Project.Arena = def.Project.Arena
	}
	if config.Project.Runtime == "" {
		config.Project.Runtime = def.Project.Runtime
	}
	if config.Output.Suffix == "" {
		config.Output.Suffix = def.Output.Suffix
	}
	if config.Output.Dir != "" && !filepath.IsAbs(config.Output.Dir) {
		config.Output.Dir = filepath.Join(GetProjectRoot(path), config.Output.Dir)
	}

	return config, nil
}

// GetProjectRoot 获取项目根目录（meantree.toml 所在目录）
func GetProjectRoot(configPath string) string {
	if configPath == "" {
		return ""
	}
	return filepath.Dir(configPath)
}
