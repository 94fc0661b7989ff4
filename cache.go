package trafficplayback

import (
	"bytes"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/theoremus-urban-solutions/traffic-playback/playback"
)

// FrameCache memoizes serialized frame responses. A loaded run is immutable,
// so a frame response only needs to be built once per run; the cache keys on
// the controller's run generation and drops everything when a new run is
// installed.
type FrameCache struct {
	controller *playback.Controller

	mu        sync.Mutex
	gen       uint64
	responses map[string][]byte
}

func NewFrameCache(c *playback.Controller) *FrameCache {
	return &FrameCache{controller: c, responses: map[string][]byte{}}
}

func (fc *FrameCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

// FrameResponse returns the serialized frame view at a clamped step index.
func (fc *FrameCache) FrameResponse(step int) ([]byte, error) {
	gen := fc.controller.RunGeneration()
	key := fc.memoKey("frame", strconv.Itoa(step))

	fc.mu.Lock()
	if fc.gen != gen {
		fc.gen = gen
		fc.responses = map[string][]byte{}
	}
	if buf, ok := fc.responses[key]; ok {
		fc.mu.Unlock()
		return buf, nil
	}
	fc.mu.Unlock()

	fv := playback.BuildFrameView(fc.controller.FrameAt(step))
	buf, err := json.Marshal(fv)
	if err != nil {
		return nil, err
	}

	fc.mu.Lock()
	if fc.gen == gen {
		fc.responses[key] = buf
	}
	fc.mu.Unlock()
	return buf, nil
}
