// Package statsd implements a client to send basic statd metrics (timer,
// counter and gauge) to a listening UDP statsd server
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package statsd

import (
	"bytes"
	"fmt"
	"net"
	"strings"

	"github.com/syang0/DiskIOBenchmark/cmn/debug"
)

// MetricType is the type of statsd metric
type MetricType int

const (
	// Timer is statsd's timer type
	Timer MetricType = iota
	// Counter is statsd's counter type
	Counter
	// Gauge is statsd's gauge type
	Gauge
	// PersistentCounter is statsd's gauge type which is increased every time by the value
	PersistentCounter
)

type (
	// Client implements a statsd client
	Client struct {
		conn   *net.UDPConn
		prefix string
		opened bool // true if the connection with statsd is successfully opened
	}

	// Metric is a generic structure for all types of statsd metrics
	Metric struct {
		Type  MetricType // timer, counter or gauge
		Name  string     // name of this particular metric
		Value any
	}
)

// New returns a client after resolving server and self's address and dialing the server.
// Caller needs to call Close.
func New(ip string, port int, prefix string) (Client, error) {
	server, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", ip, port))
	if err != nil {
		return Client{}, err
	}
	self, err := net.ResolveUDPAddr("udp", "127.0.0.1:0")
	if err != nil {
		return Client{}, err
	}
	conn, err := net.DialUDP("udp", self, server)
	if err != nil {
		return Client{}, err
	}
	return Client{conn, prefix, true}, nil
}

// Close closes the UDP connection
func (c Client) Close() error {
	if c.opened {
		return c.conn.Close()
	}
	return nil
}

// Send sends metrics to the statsd server; sending errors are ignored
func (c Client) Send(bucket string, metrics ...Metric) {
	if !c.opened {
		return
	}
	var packet bytes.Buffer

	// ":" is not allowed in the bucket name since the server treats it as a value separator
	bucket = strings.ReplaceAll(bucket, ":", "_")

	for _, m := range metrics {
		var t, prefix string
		switch m.Type {
		case Timer:
			t = "ms"
		case Counter:
			t = "c"
		case Gauge:
			t = "g"
		case PersistentCounter:
			prefix = "+"
			t = "g"
		default:
			debug.Assertf(false, "unknown metric type %+v", m.Type)
			continue
		}

		if packet.Len() > 0 {
			packet.WriteRune('\n')
		}
		fmt.Fprintf(&packet, "%s.%s.%s:%s%v|%s", c.prefix, bucket, m.Name, prefix, m.Value, t)
	}

	if packet.Len() > 0 {
		c.conn.Write(packet.Bytes())
	}
}
