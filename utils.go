package swagview

import (
	"fmt"
	"net"
	"path"
	"strconv"
	"strings"
	"time"
)

var localIP string

func spanFill(input string, inputLen, num int) string {
	zeroNum := num - inputLen
	for i := 0; i < zeroNum; i++ {
		input += " "
	}
	return input
}

func timeFormat(date time.Time, format ...string) string {
	if date.IsZero() {
		return ""
	}
	str := "Y-m-d H:i:s"
	if len(format) > 0 {
		str = format[0]
	}
	year := strconv.Itoa(date.Year())
	month := fmt.Sprintf("%d", date.Month())
	day := strconv.Itoa(date.Day())
	hour := strconv.Itoa(date.Hour())
	minute := strconv.Itoa(date.Minute())
	second := strconv.Itoa(date.Second())
	str = strings.ReplaceAll(str, "Y", year)
	str = strings.ReplaceAll(str, "m", zeroFill(month, 2))
	str = strings.ReplaceAll(str, "d", zeroFill(day, 2))
	str = strings.ReplaceAll(str, "H", zeroFill(hour, 2))
	str = strings.ReplaceAll(str, "i", zeroFill(minute, 2))
	str = strings.ReplaceAll(str, "s", zeroFill(second, 2))
	return str
}

func zeroFill(input string, num int) string {
	for len(input) < num {
		input = "0" + input
	}
	return input
}

func isDefaultLogger(log Logger) (ok bool) {
	var levelLog *levelHandleLogger
	if levelLog, ok = log.(*levelHandleLogger); !ok {
		return
	}
	if levelLog.log == nil {
		return false
	}
	_, ok = levelLog.log.(*defaultLogger)
	return
}

// cleanDocsPath returns the mount prefix without a trailing slash, "" for root
func cleanDocsPath(val string) string {
	if val == "" || val == "/" {
		return ""
	}
	return strings.TrimSuffix(path.Join("/", val), "/")
}

func GetLocalIP() string {
	if localIP == "" {
		conn, err := net.Dial("udp", "114.114.114.114:53")
		if err != nil {
			return "127.0.0.1"
		}
		defer conn.Close()
		localIP = conn.LocalAddr().(*net.UDPAddr).IP.String()
	}
	return localIP
}

func printAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || (host != "" && host != "0.0.0.0") {
		return addr
	}
	return GetLocalIP() + ":" + port
}
