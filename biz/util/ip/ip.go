package ip

import (
	"encoding/hex"
	"net"
	"sync"
)

var (
	hostIPv4     net.IP
	hostIPv4Once sync.Once
)

// hostIP is the first non-loopback IPv4 of this host, nil when there is none.
// Looked up once: it only labels log lines and log ids.
func hostIP() net.IP {
	hostIPv4Once.Do(func() {
		addrs, err := net.InterfaceAddrs()
		if err != nil {
			return
		}
		hostIPv4 = firstIPv4(addrs)
	})
	return hostIPv4
}

func firstIPv4(addrs []net.Addr) net.IP {
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if v4 := ipNet.IP.To4(); v4 != nil {
			return v4
		}
	}
	return nil
}

// IPv4 is the host address in dotted form, "" when unknown.
func IPv4() string {
	if ip := hostIP(); ip != nil {
		return ip.String()
	}
	return ""
}

// IPv4Hex is the host address as 8 hex chars, zeros when unknown.
func IPv4Hex() string {
	if ip := hostIP(); ip != nil {
		return hex.EncodeToString(ip)
	}
	return "00000000"
}
