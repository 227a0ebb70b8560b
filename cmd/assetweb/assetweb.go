// Command assetweb serves the decoded data files over HTTP.
package main

import (
	"flag"
	"io"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"

	"badc0de.net/pkg/go-dungeon/web"
	"badc0de.net/pkg/go-dungeon/world"
	"badc0de.net/pkg/go-dungeon/world/full"
)

var (
	listenAddress = flag.String("listen_address", ":8080", "http listen address for assetweb")
	accessLog     = flag.Bool("access_log", true, "whether to write a combined access log to stdout")
)

// newHandler serves a, writing a combined access log to logTo unless it is
// nil.
func newHandler(a *world.Assets, logTo io.Writer) http.Handler {
	var h http.Handler = web.New(a)
	if logTo != nil {
		h = handlers.CombinedLoggingHandler(logTo, h)
	}
	return h
}

func main() {
	full.SetupFilePathFlags()
	flagutil.Parse()

	for _, f := range []full.PathFlag{full.FlagTilesPath, full.FlagMonsterPicsPath, full.FlagMonsterMaskPath, full.FlagRoomsPath, full.FlagMonstersPath} {
		glog.Infof("%s: %q", f, full.PathFlagValue(f))
	}

	a, err := full.FromFilePathFlags()
	if err != nil {
		glog.Exitf("error loading assets: %v", err)
	}
	glog.Infof("serving %d rooms, %d tiles, %d monster sprites on %s", len(a.Rooms()), len(a.TileSheet()), len(a.MonsterSheet()), *listenAddress)

	var logTo io.Writer
	if *accessLog {
		logTo = os.Stdout
	}
	glog.Fatal(http.ListenAndServe(*listenAddress, newHandler(a, logTo)))
}
