package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/dcolor/pkg/configs"
	"github.com/yeisme/dcolor/pkg/utils/schema"
)

var (
	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage dcolor configuration",
		Long:    `dcolor config allows you to view and manage your dcolor configuration settings.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate dcolor configuration",
		Long: `dcolor config validate checks that the configuration file can be read and
that the format section names a known profile and palette colors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// 加载与校验已在 PersistentPreRunE 中完成，这里只报告结果
			fileUsed := dcolorCtx.Viper.ConfigFileUsed()
			if fileUsed == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No config file found, using defaults")
				return nil
			}
			log.Info().Msgf("Config file used: %s", fileUsed)
			fmt.Fprintf(cmd.OutOrStdout(), "Config file %s is valid\n", fileUsed)
			return nil
		},
		Aliases: []string{"check", "verify"},
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List dcolor configuration",
		Long: `dcolor config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - app: Application settings
  - log: Logging settings
  - format: Default formatting settings

Examples:
  dcolor config list                    # Show all configuration (viper raw data)
  dcolor config list --all              # Show all configuration with defaults
  dcolor config list format             # Show only format settings
  dcolor config list --format json      # Output in JSON format
  dcolor config list --toml             # Output in TOML format (shorthand)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			// 确定输出格式
			format := configs.GetOutputFormatFromFlags(cmd, configs.FormatYAML)

			// 检查是否显示完整配置（包含默认值）
			showAll, _ := cmd.Flags().GetBool("all")

			// 获取配置数据
			data, err := configs.GetConfigSection(dcolorCtx.Viper, section, showAll)
			if err != nil {
				return err
			}

			return configs.OutputData(data, format, cmd.OutOrStdout())
		},
		Aliases: []string{"ls"},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize dcolor configuration",
		Long: `dcolor config init creates a new configuration file with default settings.

Examples:
  dcolor config init                    # Create .dcolor.yaml in current directory
  dcolor config init --path ~/.config/dcolor/dcolor.yaml
  dcolor config init --format toml      # Create TOML format config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// 获取标志值
			path, _ := cmd.Flags().GetString("path")
			formatStr, _ := cmd.Flags().GetString("format")

			// 解析格式
			format, err := configs.ParseOutputFormat(formatStr)
			if err != nil {
				return err
			}

			// 如果没有指定路径，使用默认路径
			if path == "" {
				path = ".dcolor." + string(format)
			}

			// 创建配置文件
			if err := configs.CreateDefaultConfig(path, format); err != nil {
				return err
			}

			log.Info().Msgf("Config file created successfully: %s", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	configSchemaCmd = &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if result, _ := cmd.Flags().GetBool("result"); result {
				return schema.GenResultSchema(cmd.OutOrStdout())
			}
			return schema.GenConfigSchema(cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(
		configListCmd,
		configValidateCmd,
		configInitCmd,
		configSchemaCmd,
	)

	// 添加 config list 标志
	configListCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	configListCmd.Flags().Bool("yaml", false, "Output in YAML format")
	configListCmd.Flags().Bool("json", false, "Output in JSON format")
	configListCmd.Flags().Bool("toml", false, "Output in TOML format")
	configListCmd.Flags().Bool("text", false, "Output in plain text format")
	configListCmd.Flags().BoolP("all", "a", false, "Show complete configuration with defaults (processed struct)")

	// 添加 config init 标志
	configInitCmd.Flags().StringP("path", "p", "", "Path to the config file")
	configInitCmd.Flags().StringP("format", "f", "yaml", "Format of the config file (yaml, json, toml)")

	configSchemaCmd.Flags().Bool("result", false, "print the schema of 'format --output json' instead")
}
