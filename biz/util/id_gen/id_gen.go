package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"iris_manager/be/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

var idgen = NewIDGenerator(64)

// NewID returns a log id: base36 millis + host ipv4 hex + pid + base36 random.
func NewID() string {
	return idgen.NewID()
}

type IDGenerator struct {
	pool <-chan string
	stop chan struct{}
}

// NewIDGenerator pre-builds up to bufSize ids in a background goroutine.
func NewIDGenerator(bufSize int) *IDGenerator {
	stop := make(chan struct{})
	return &IDGenerator{
		pool: fill(bufSize, stop, ip.IPv4Hex(), strconv.Itoa(os.Getpid())),
		stop: stop,
	}
}

func (g *IDGenerator) Stop() {
	select {
	case <-g.stop:
	default:
		close(g.stop)
	}
}

func (g *IDGenerator) NewID() string {
	return <-g.pool
}

func fill(size int, stop <-chan struct{}, host, pid string) <-chan string {
	pool := make(chan string, size)

	go func() {
		var sb strings.Builder
		for {
			sb.Reset()
			sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
			sb.WriteString(host)
			sb.WriteString(pid)
			sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))

			select {
			case <-stop:
				close(pool)
				return
			case pool <- sb.String():
			}
		}
	}()

	return pool
}
