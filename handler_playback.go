package trafficplayback

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/theoremus-urban-solutions/traffic-playback/simdata"
)

func handleView(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(controller.View())
}

func handleFrame(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	step := controller.CurrentStep()
	if s := r.URL.Query().Get("step"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			w.WriteHeader(400)
			_, _ = w.Write(buildErrorPayload("frame", "step must be an integer"))
			return
		}
		step = n
	}
	buf, err := frames.FrameResponse(step)
	if err != nil {
		w.WriteHeader(500)
		_, _ = w.Write(buildErrorPayload("frame", err.Error()))
		return
	}
	_, _ = w.Write(buf)
}

func handleStatistics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(controller.Statistics())
}

func handlePlay(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodPost {
		w.WriteHeader(405)
		_, _ = w.Write(buildErrorPayload("play", "POST required"))
		return
	}
	controller.Play()
	_, _ = w.Write(buildStatusPayload("ok"))
}

func handlePause(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodPost {
		w.WriteHeader(405)
		_, _ = w.Write(buildErrorPayload("pause", "POST required"))
		return
	}
	controller.Pause()
	_, _ = w.Write(buildStatusPayload("ok"))
}

func handleStep(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodPost {
		w.WriteHeader(405)
		_, _ = w.Write(buildErrorPayload("step", "POST required"))
		return
	}
	s := r.URL.Query().Get("n")
	if s == "" {
		w.WriteHeader(400)
		_, _ = w.Write(buildErrorPayload("step", "missing n parameter"))
		return
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(buildErrorPayload("step", "n must be an integer"))
		return
	}
	controller.SetStep(n)
	_, _ = w.Write(buildStatusPayload("ok"))
}

func handleReload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodPost {
		w.WriteHeader(405)
		_, _ = w.Write(buildErrorPayload("reload", "POST required"))
		return
	}
	var err error
	if identifier := r.URL.Query().Get("identifier"); identifier != "" {
		err = controller.Load(r.Context(), identifier)
	} else {
		err = controller.Initialize(r.Context())
	}
	if err != nil {
		if simdata.IsNotFound(err) {
			w.WriteHeader(404)
		} else {
			w.WriteHeader(502)
		}
		_, _ = w.Write(buildErrorPayload("reload", err.Error()))
		return
	}
	_, _ = w.Write(buildStatusPayload("ok"))
}
