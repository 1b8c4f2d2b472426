package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/hcl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	sqlrunCmd = &cobra.Command{
		Use:   "sqlrun",
		Short: "Run SQL scripts against sqlite, mysql, and postgres backends",
		Long: "Sqlrun executes SQL scripts against an embedded sqlite database or a " +
			"mysql or postgres server and works with the results as table values.",
		PersistentPreRunE: sqlrunPreRun,
		PersistentPostRun: sqlrunPostRun,
	}

	logFile   = "sqlrun.log"
	logLevel  = "info"
	logStderr = false
	logWriter io.WriteCloser

	configFile = "sqlrun.hcl"
	noConfig   = false

	// database is a connection specifier, or the name of one defined by the
	// databases block of the config file.
	database  = ""
	databases = map[string]string{}

	cfgVars   = map[string]*pflag.Flag{}
	cfg       = map[string]interface{}{}
	usedFlags = map[string]struct{}{}
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		DisableLevelTruncation: true,
	})

	fs := sqlrunCmd.PersistentFlags()

	fs.StringVarP(&database, "db", "d", database, "`database` specifier or config name")
	cfgVars["db"] = fs.Lookup("db")

	fs.StringVar(&logFile, "log-file", logFile, "`file` to use for logging")
	cfgVars["log-file"] = fs.Lookup("log-file")

	fs.StringVar(&logLevel, "log-level", logLevel,
		"log level: trace, debug, info, warn, error, fatal, or panic")
	cfgVars["log-level"] = fs.Lookup("log-level")

	fs.BoolVarP(&logStderr, "log-stderr", "s", logStderr, "log to standard error")

	fs.StringVar(&configFile, "config-file", configFile, "`file` to load config from")
	fs.BoolVar(&noConfig, "no-config", noConfig, "don't load config file")

	cfgVars["databases"] = nil
}

func Execute() error {
	return sqlrunCmd.Execute()
}

func sqlrunPreRun(cmd *cobra.Command, args []string) error {
	cmd.Flags().Visit(
		func(flg *pflag.Flag) {
			usedFlags[flg.Name] = struct{}{}
		})

	if configFile != "" && !noConfig {
		err := loadConfig()
		if err != nil {
			return fmt.Errorf("sqlrun: %s", err)
		}
	}

	if !logStderr && logFile != "" {
		var err error
		logWriter, err = os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			logWriter = nil
			return fmt.Errorf("sqlrun: %s", err)
		}
		log.SetOutput(logWriter)
	}

	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("sqlrun: %s", err)
	}
	log.SetLevel(ll)

	log.WithField("pid", os.Getpid()).Info("sqlrun starting")
	return nil
}

func sqlrunPostRun(cmd *cobra.Command, args []string) {
	log.WithField("pid", os.Getpid()).Info("sqlrun done")

	if logWriter != nil {
		logWriter.Close()
	}
}

func loadConfig() error {
	b, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) && configFile == "sqlrun.hcl" {
			return nil
		}
		return err
	}

	err = hcl.Decode(&cfg, string(b))
	if err != nil {
		return err
	}

	for name, val := range cfg {
		if flg, ok := cfgVars[name]; ok {
			if flg == nil {
				continue
			}
			if _, ok := usedFlags[flg.Name]; ok {
				continue
			}
			err := flg.Value.Set(fmt.Sprintf("%v", val))
			if err != nil {
				return fmt.Errorf("%s: %s", name, err)
			}
		} else {
			return fmt.Errorf("%s is not a config variable", name)
		}
	}

	configDatabases()
	return nil
}

// configDatabases collects named connection specifiers from the databases
// block of the config file:
//
//	databases {
//	    orders = "postgres:localhost/orders"
//	}
func configDatabases() {
	val := cfg["databases"]
	if val == nil {
		return
	}

	add := func(m map[string]interface{}) {
		for name, spec := range m {
			if s, ok := spec.(string); ok {
				databases[name] = s
			}
		}
	}

	switch val := val.(type) {
	case map[string]interface{}:
		add(val)
	case []map[string]interface{}:
		for _, m := range val {
			add(m)
		}
	case []interface{}:
		for _, obj := range val {
			if m, ok := obj.(map[string]interface{}); ok {
				add(m)
			}
		}
	}
}

// resolveDB maps a config-file database name to its specifier; anything not
// named in the config is already a specifier.
func resolveDB(db string) string {
	if spec, ok := databases[db]; ok {
		return spec
	}
	return db
}
