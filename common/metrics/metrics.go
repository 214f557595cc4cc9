package metrics

import (
	"net/http"

	"github.com/arl/statsviz"
)

// Register 在 mux 上挂载 /debug/statsviz/
func Register(mux *http.ServeMux) error {
	return statsviz.Register(mux)
}

// Serve 单独起一个监控端口，阻塞
func Serve(addr string) error {
	mux := http.NewServeMux()
	if err := Register(mux); err != nil {
		return err
	}
	return http.ListenAndServe(addr, mux)
}
