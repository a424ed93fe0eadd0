package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/recordbin/recordbin/cmd/recordd/handlers"
	kcs "github.com/recordbin/recordbin/pkg/configs/server"
	kdb "github.com/recordbin/recordbin/pkg/db"
	kmg "github.com/recordbin/recordbin/pkg/db/mongodb"
	kpg "github.com/recordbin/recordbin/pkg/db/postgres"
	"github.com/recordbin/recordbin/pkg/utils/echoutil"
	"github.com/recordbin/recordbin/pkg/utils/filewatch"
)

func main() {

	configPath := flag.String("config-path", "", "server config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()

	e := echo.New()

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	// read configfile
	conf, err := kcs.LoadServerConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configuration: %s", err)
	}

	if *configPath != "" {
		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), *configPath)
		if err != nil {
			log.Fatalf("can not watch configuration: %s", err)
		}
		defer cancel()
		context.AfterFunc(ctx, func() {
			log.Println("config file is updated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by config update: %s", err)
			}
		})
	}

	// get dbaccessor
	ctx := context.Background()
	db, err := getDBAccessor(ctx, conf.StoreURI)
	if err != nil {
		log.Fatalf("can not reach the record store: %s", err)
	}
	defer db.Close()

	// handlers
	e.GET("/", handlers.GetRootHandler())
	e.POST("/data", handlers.PostRecordHandler(db.Records()))
	e.GET("/data", handlers.GetRecordsHandler(db.Records()))

	log.Println("registered routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(":"+conf.ServerPort, cert, key))
	} else {
		e.Logger.Fatal(e.Start(":" + conf.ServerPort))
	}
}

func getDBAccessor(ctx context.Context, uri string) (kdb.RecordDatabase, error) {
	driver, err := kdb.DetectDriver(uri)
	if err != nil {
		return nil, err
	}

	switch driver {
	case kdb.PostgreSQL:
		return kpg.New(ctx, uri)
	default:
		return kmg.New(ctx, uri)
	}
}
