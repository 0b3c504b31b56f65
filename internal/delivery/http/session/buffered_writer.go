package session

import (
	"bytes"
	"net/http"
)

// bufferedWriter holds the status and body until flush. Headers go straight
// to the wrapped writer's map.
type bufferedWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (w *bufferedWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.status = code
	w.wroteHeader = true
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	return w.body.Write(b)
}

func (w *bufferedWriter) flush() error {
	if !w.wroteHeader {
		return nil
	}
	w.ResponseWriter.WriteHeader(w.status)
	if w.body.Len() == 0 {
		return nil
	}
	_, err := w.ResponseWriter.Write(w.body.Bytes())

	return err
}
