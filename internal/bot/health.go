package bot

import (
	"fmt"
	"log"
	"net/http"

	"playlistbot/internal/playlist"
)

func healthHandler(reg *playlist.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = fmt.Fprintf(w, "guilds %d\n", reg.Len())
	})
	return mux
}

func StartHealthServer(port string, reg *playlist.Registry) {
	go func() {
		addr := "0.0.0.0:" + port
		log.Printf("Health server listening on %s", addr)
		if err := http.ListenAndServe(addr, healthHandler(reg)); err != nil {
			log.Printf("Health server stopped: %v", err)
		}
	}()
}
