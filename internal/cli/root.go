package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nerdneilsfield/validator-format-agent/internal/config"
	"github.com/nerdneilsfield/validator-format-agent/internal/logger"
	"github.com/nerdneilsfield/validator-format-agent/pkg/llm"
	"github.com/nerdneilsfield/validator-format-agent/pkg/llm/openai"
	"github.com/nerdneilsfield/validator-format-agent/pkg/llm/openaiv2"
	"github.com/nerdneilsfield/validator-format-agent/pkg/translation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// 命令行标志变量
	cfgFile    string
	sourceFmt  string
	targetFmt  string
	debugMode  bool
	disableLLM bool // 强制只走启发式路径
)

// NewRootCommand 创建根命令
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "validator-translator",
		Short: "校验器格式翻译工具",
		Long: `校验器格式翻译工具在四种表示之间转换同一个可测试行为：
行为场景（Given/When/Then 步骤）、自然语言、可执行测试代码和结构化数据。

优先使用语言模型翻译；语言模型不可用或失败时自动回退到
确定性的启发式转换，并通过语义校验和往返测试量化翻译质量。`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径")
	rootCmd.PersistentFlags().StringVar(&sourceFmt, "from", "", "源格式")
	rootCmd.PersistentFlags().StringVar(&targetFmt, "to", "", "目标格式")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "调试模式")
	rootCmd.PersistentFlags().BoolVar(&disableLLM, "no-llm", false, "禁用语言模型，只使用启发式转换")

	rootCmd.AddCommand(newTranslateCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newRoundTripCommand())
	rootCmd.AddCommand(newListFormatsCommand())

	return rootCmd
}

// buildService 根据配置装配引擎
func buildService(ctx context.Context, log *zap.Logger) (translation.Service, *config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if debugMode {
		cfg.Debug = true
	}

	engineCfg := translation.DefaultConfig()
	engineCfg.Model = cfg.LLM.Model
	engineCfg.Temperature = cfg.LLM.Temperature
	engineCfg.MaxTokens = cfg.LLM.MaxTokens
	engineCfg.EquivalenceThreshold = cfg.EquivalenceThreshold
	engineCfg.PreservationThreshold = cfg.PreservationThreshold

	opts := []translation.Option{
		translation.WithLogger(log),
	}

	if cfg.UseCache {
		opts = append(opts, translation.WithCache(translation.NewMemoryCache()))
	}

	if client := buildLLMClient(ctx, cfg, log); client != nil {
		opts = append(opts, translation.WithLLMClient(client))
	}

	svc, err := translation.New(engineCfg, opts...)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

// buildLLMClient 按配置创建语言模型客户端。
// 未配置、provider 未注册或健康检查失败时返回 nil，引擎回退到启发式路径。
func buildLLMClient(ctx context.Context, cfg *config.Config, log *zap.Logger) llm.Client {
	if disableLLM || cfg.LLM.Provider == "" || cfg.LLM.APIKey == "" {
		log.Debug("language model disabled, heuristic path only")
		return nil
	}

	client, err := newClientRegistry(cfg).Get(cfg.LLM.Provider)
	if err != nil {
		log.Warn("unknown llm provider, heuristic path only", zap.String("provider", cfg.LLM.Provider))
		return nil
	}

	return verifyClientHealth(ctx, client, log)
}

// newClientRegistry 构建注册了全部客户端实现的注册表，provider 名即注册名
func newClientRegistry(cfg *config.Config) *llm.Registry {
	registry := llm.NewRegistry()

	oc := openai.DefaultConfig()
	oc.APIKey = cfg.LLM.APIKey
	oc.APIEndpoint = cfg.LLM.BaseURL
	oc.Model = cfg.LLM.Model
	oc.Temperature = cfg.LLM.Temperature
	oc.MaxTokens = cfg.LLM.MaxTokens
	_ = registry.Register("openai", openai.New(oc))

	vc := openaiv2.DefaultConfig()
	vc.APIKey = cfg.LLM.APIKey
	vc.APIEndpoint = cfg.LLM.BaseURL
	vc.Model = cfg.LLM.Model
	vc.Temperature = cfg.LLM.Temperature
	vc.MaxTokens = cfg.LLM.MaxTokens
	_ = registry.Register("openai-v2", openaiv2.New(vc))

	return registry
}

// verifyClientHealth 探测语言模型是否可用，不可用时返回 nil 让引擎走启发式路径
func verifyClientHealth(ctx context.Context, client llm.Client, log *zap.Logger) llm.Client {
	if client == nil {
		return nil
	}

	if err := client.HealthCheck(ctx); err != nil {
		log.Warn("language model health check failed, heuristic path only",
			zap.String("model", client.GetModel()),
			zap.Error(err))
		return nil
	}

	return client
}

// readContent 从文件参数或标准输入读取内容
func readContent(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("读取输入文件失败: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("读取标准输入失败: %w", err)
	}
	return string(data), nil
}

// newLogger 创建 CLI 日志记录器
func newLogger() *zap.Logger {
	return logger.NewLogger(debugMode)
}
