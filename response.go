package trafficplayback

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/traffic-playback/utils"
)

type errorPayload struct {
	Error struct {
		Call        string `json:"call"`
		Description string `json:"description"`
	} `json:"error"`
	Timestamp string `json:"timestamp"`
}

func buildErrorPayload(call, msg string) []byte {
	var e errorPayload
	e.Error.Call = call
	e.Error.Description = msg
	e.Timestamp = utils.Iso8601Now()
	b, _ := json.Marshal(e)
	return b
}

type statusPayload struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func buildStatusPayload(status string) []byte {
	b, _ := json.Marshal(statusPayload{Status: status, Timestamp: utils.Iso8601Now()})
	return b
}
