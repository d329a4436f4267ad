package formula

import (
	"fmt"
	"strconv"
	"strings"
)

// Platform is a streaming destination with known ingest servers.
type Platform int

// Supported platforms.
const (
	PlatformYouTube Platform = iota
	PlatformTwitch
	PlatformFacebook
	PlatformCustom
)

// Protocol selects plain or TLS ingest.
type Protocol int

// Ingest protocols.
const (
	ProtocolRTMPS Protocol = iota
	ProtocolRTMP
)

var platformInfo = [...]struct {
	key, name   string
	rtmp, rtmps string
}{
	PlatformYouTube:  {"youtube", "YouTube", "rtmp://a.rtmp.youtube.com/live2", "rtmps://a.rtmp.youtube.com/live2"},
	PlatformTwitch:   {"twitch", "Twitch", "rtmp://live.twitch.tv/app", "rtmps://live.twitch.tv/app"},
	PlatformFacebook: {"facebook", "Facebook", "rtmp://live-api-s.facebook.com:80/rtmp", "rtmps://live-api-s.facebook.com:443/rtmp"},
	PlatformCustom:   {"custom", "Custom", "", ""},
}

// String returns the platform display name.
func (p Platform) String() string {
	if p < 0 || int(p) >= len(platformInfo) {
		return "Platform(" + strconv.Itoa(int(p)) + ")"
	}
	return platformInfo[p].name
}

// ParsePlatform accepts platform keys such as "youtube".
func ParsePlatform(s string) (Platform, error) {
	for i, info := range platformInfo {
		if strings.EqualFold(s, info.key) {
			return Platform(i), nil
		}
	}
	return 0, fmt.Errorf("unknown platform %q (want youtube, twitch, facebook, custom)", s)
}

// String returns the URL scheme.
func (p Protocol) String() string {
	if p == ProtocolRTMP {
		return "rtmp"
	}
	return "rtmps"
}

// ParseProtocol accepts "rtmp" or "rtmps".
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(s) {
	case "rtmps":
		return ProtocolRTMPS, nil
	case "rtmp":
		return ProtocolRTMP, nil
	}
	return 0, fmt.Errorf("unknown protocol %q (want rtmp or rtmps)", s)
}

// IngestServer returns the base server URL, empty for PlatformCustom.
func IngestServer(p Platform, proto Protocol) string {
	if p < 0 || int(p) >= len(platformInfo) {
		return ""
	}
	if proto == ProtocolRTMP {
		return platformInfo[p].rtmp
	}
	return platformInfo[p].rtmps
}

// RTMPInput selects a destination. Server is only read for PlatformCustom.
type RTMPInput struct {
	Platform  Platform
	Protocol  Protocol
	Server    string
	StreamKey string
}

// RTMPResult is the assembled ingest URL.
type RTMPResult struct {
	ServerURL string
	FullURL   string
	StreamKey string
}

// RTMP joins the ingest server and stream key. No escaping is applied.
func RTMP(in RTMPInput) RTMPResult {
	server := IngestServer(in.Platform, in.Protocol)
	if in.Platform == PlatformCustom {
		server = in.Server
	}
	full := server
	if in.StreamKey != "" {
		full = server + "/" + in.StreamKey
	}
	return RTMPResult{ServerURL: server, FullURL: full, StreamKey: in.StreamKey}
}

// Masked returns FullURL with all but the last four key characters hidden.
func (r RTMPResult) Masked() string {
	if r.StreamKey == "" {
		return r.FullURL
	}
	key := []rune(r.StreamKey)
	keep := 4
	if len(key) <= keep {
		keep = 0
	}
	masked := strings.Repeat("•", len(key)-keep) + string(key[len(key)-keep:])
	return r.ServerURL + "/" + masked
}
