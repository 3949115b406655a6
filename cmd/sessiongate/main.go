package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/muesli/coral"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/tradelayer/sessiongate/internal/server"
	"github.com/tradelayer/sessiongate/internal/sessionstore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const dbname = "sessiongate.db"

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	cfg string
)

func main() {
	c := &coral.Command{
		Use:     "sessiongate",
		Short:   "Session authentication front for the trading REST API",
		Version: fmt.Sprintf("%s - build %.7s @ %s - %s", version, revision, date, runtime.Version()),
		Args:    coral.ExactArgs(0),
	}
	initCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(initCmd)

	serverCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(serverCmd)

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func dbnameWithPath(path string) string {
	if len(path) == 0 {
		return dbname
	}
	return filepath.Join(path, dbname)
}

func openStore(konf *koanf.Koanf) (sessionstore.Client, error) {
	if addr := konf.String("redis.address"); addr != "" {
		return sessionstore.RedisOpen(&redis.Options{
			Addr:     addr,
			Password: konf.String("redis.password"),
			DB:       konf.Int("redis.db"),
		})
	}
	return sessionstore.StormOpen(dbnameWithPath(konf.String("database_path")))
}

func setupLogger(konf *koanf.Koanf) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	if filename := konf.String("log.file"); filename != "" {
		logrus.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    konf.Int("log.max_size"),
			MaxBackups: konf.Int("log.max_backups"),
		}))
	}
}

var (
	initCmd = &coral.Command{
		Use:   "init",
		Short: "Init the session replica database",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf := koanf.New(".")
			if err := konf.Load(file.Provider(cfg), yaml.Parser()); err != nil {
				return err
			}

			return sessionstore.StormInit(dbnameWithPath(konf.String("database_path")))
		},
	}

	//
	//
	serverCmd = &coral.Command{
		Use:   "server",
		Short: "Start server",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf := koanf.New(".")
			if err := konf.Load(file.Provider(cfg), yaml.Parser()); err != nil {
				return err
			}
			setupLogger(konf)

			store, err := openStore(konf)
			if err != nil {
				return errors.Wrap(err, "could not open session store")
			}
			defer store.Close()

			engine := server.EchoEngine(server.Controller{
				Version: version,
				Store:   store,
			})
			server.PrintRoutes(engine)

			address := konf.String("address")
			log.Printf("Server listening on %s\n", address)
			return errors.Wrap(engine.Start(address), "could not run server")
		},
	}
)
