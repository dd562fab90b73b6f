package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// LLMConfig 语言模型客户端配置
type LLMConfig struct {
	// Provider 客户端实现：openai 或 openai-v2（官方 SDK），留空禁用 AI 路径
	Provider string `mapstructure:"provider"`

	// Model 模型名称
	Model string `mapstructure:"model"`

	// APIKey API 密钥，也可以走 VALIDATOR_LLM_API_KEY 环境变量
	APIKey string `mapstructure:"api_key"`

	// BaseURL 自定义服务端点
	BaseURL string `mapstructure:"base_url"`

	// Temperature 温度参数
	Temperature float32 `mapstructure:"temperature"`

	// MaxTokens 最大输出 token 数
	MaxTokens int `mapstructure:"max_tokens"`
}

// Config 保存 CLI 的所有配置
type Config struct {
	// LLM 语言模型配置
	LLM LLMConfig `mapstructure:"llm"`

	// EquivalenceThreshold 语义等价度达标线
	EquivalenceThreshold float64 `mapstructure:"equivalence_threshold"`

	// PreservationThreshold 往返保留率达标线
	PreservationThreshold float64 `mapstructure:"preservation_threshold"`

	// UseCache 是否启用翻译结果缓存
	UseCache bool `mapstructure:"use_cache"`

	// Debug 调试模式
	Debug bool `mapstructure:"debug"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.3,
			MaxTokens:   2000,
		},
		EquivalenceThreshold:  0.7,
		PreservationThreshold: 0.9,
		UseCache:              true,
	}
}

// Load 加载配置文件。configFile 为空时按默认位置查找；
// 找不到配置文件时返回默认配置而不是报错。
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("validator-translator")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "validator-translator"))
		}
	}

	v.SetEnvPrefix("VALIDATOR")
	v.AutomaticEnv()

	cfg := DefaultConfig()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && configFile == "" {
			return applyEnv(cfg), nil
		}
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	return applyEnv(cfg), nil
}

// applyEnv 应用环境变量覆盖
func applyEnv(cfg *Config) *Config {
	if key := os.Getenv("VALIDATOR_LLM_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	}
	return cfg
}
