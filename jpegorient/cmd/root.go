package cmd

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/garyhouston/jpegorient/source"
	"github.com/mitchellh/go-homedir"
	"github.com/paulmatencio/s3c/gLog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	config   string
	loglevel int
	verbose  bool

	RootCmd = &cobra.Command{
		Use:   "jpegorient",
		Short: "Find and normalize the Exif orientation of JPEG images",
		Long: `Images are given as file paths, file://, http(s)://, s3://bucket/key
URLs or base64 data URIs.`,
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&config, "config", "c", "", "config file (default $HOME/.jpegorient/config.yaml)")
	RootCmd.PersistentFlags().IntVarP(&loglevel, "loglevel", "l", 0, "log level (1: error, 2: warning, 3: info, 4: trace)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "same as --loglevel 4")

	viper.BindPFlag("loglevel", RootCmd.PersistentFlags().Lookup("loglevel"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.SetDefault("logging.output", "terminal")
	viper.SetDefault("http.timeout", 30)
	viper.SetDefault("transport.retry.number", 3)

	cobra.OnInitialize(initConfig)
}

// initConfig reads the config file and environment, then sets up logging.
func initConfig() {
	if config != "" {
		viper.SetConfigFile(config)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatalln(err)
		}
		viper.AddConfigPath(filepath.Join(home, ".jpegorient"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("jpegorient")
	viper.AutomaticEnv()

	configErr := viper.ReadInConfig()
	initLogging()
	if configErr == nil {
		gLog.Info.Printf("Using config file: %s", viper.ConfigFileUsed())
	} else if config != "" {
		gLog.Warning.Printf("Error %v reading config file %s", configErr, config)
	}
}

func initLogging() {
	level := viper.GetInt("loglevel")
	if viper.GetBool("verbose") {
		level = 4
	}
	if level == 0 {
		level = 1
	}
	output := viper.GetString("logging.output")
	if strings.ToLower(output) != "terminal" {
		gLog.InitLog(RootCmd.Name(), level, output)
		return
	}
	terminalLogging(level, os.Stderr)
}

// terminalLogging sends every enabled log level to w. Standard output is
// reserved for command results such as the encode payload.
func terminalLogging(level int, w io.Writer) {
	at := func(min int) io.Writer {
		if level >= min {
			return w
		}
		return ioutil.Discard
	}
	gLog.Init(at(3), at(2), w, w, at(4), at(5))
}

// newLoader creates a source.Loader from the configuration. S3 references
// only work if s3.url or credentials are configured.
func newLoader() (*source.Loader, error) {
	client := &http.Client{Timeout: time.Duration(viper.GetInt("http.timeout")) * time.Second}
	loader := &source.Loader{Client: client}
	endpoint := viper.GetString("s3.url")
	keyID := viper.GetString("credential.access_key_id")
	if endpoint == "" && keyID == "" {
		gLog.Trace.Println("no S3 endpoint or credentials configured")
		return loader, nil
	}
	svc, err := source.NewS3Client(source.S3Config{
		Endpoint:        endpoint,
		Region:          viper.GetString("s3.region"),
		AccessKeyID:     keyID,
		SecretAccessKey: viper.GetString("credential.secret_access_key"),
		MaxRetries:      viper.GetInt("transport.retry.number"),
		HTTPClient:      client,
	})
	if err != nil {
		return nil, err
	}
	gLog.Info.Printf("S3 endpoint %s", endpoint)
	loader.S3 = svc
	return loader, nil
}
