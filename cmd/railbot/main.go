package main

import (
	"flag"
	"fmt"
	"log"

	railbot "github.com/mumbailocal/railbot"
	"github.com/mumbailocal/railbot/config"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	query := flag.String("q", "", "query text for oneshot mode")
	sessionID := flag.String("session", "", "session ID to continue (oneshot mode)")
	flag.Parse()

	railbot.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}

	r, err := railbot.NewResponder()
	if err != nil {
		panic(err)
	}
	defer r.Close()

	switch *mode {
	case "oneshot":
		if *query == "" {
			log.Fatal("oneshot mode requires -q")
		}
		reply, sid := r.Respond(*query, *sessionID)
		fmt.Println(reply)
		log.Printf("session: %s", sid)
	case "serve":
		railbot.StartServer(r)
		railbot.HandleGracefulShutdown()
	default:
		panic("unknown mode")
	}
}
