package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

func showBanner() {
	redColor := color.New(color.FgRed, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════╗",
		"║   ██╗     ███████╗ ██████╗               ║",
		"║   ██║     ██╔════╝██╔════╝               ║",
		"║   ██║     ███████╗██║                    ║",
		"║   ██║     ╚════██║██║                    ║",
		"║   ███████╗███████║╚██████╗               ║",
		"║   ╚══════╝╚══════╝ ╚═════╝               ║",
		"║                                          ║",
		"║   ❤️  Life-Saving Connector toolkit       ║",
		"╚══════════════════════════════════════════╝",
	}

	for _, line := range banner {
		redColor.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "lsc",
	Short: "Database tooling for the Life-Saving Connector platform",
	Long: `
lsc is the operational toolkit for the Life-Saving Connector platform, a
volunteering, blood-donation and organ-donation coordination service.

Its seed command populates the platform's MongoDB database with
deterministic test data: well-known login accounts first, then every other
entity in dependency order with valid cross-references.`,

	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./lsc.config.json)")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("lsc.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
