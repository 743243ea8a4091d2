package lexer

import (
	"regexp"
	"strings"
)

// parseModeDetectionSampleSize is the number of characters sampled for auto-detection.
const parseModeDetectionSampleSize = 500

// ParseMode determines which classification rules to use for tokenization.
type ParseMode int

const (
	// ParseModeAuto automatically detects whether input is configuration
	// syntax or show command output based on content heuristics.
	ParseModeAuto ParseMode = iota

	// ParseModeConfig uses configuration syntax classification rules.
	// Use this for JunOS configuration text (set commands, hierarchical config).
	ParseModeConfig

	// ParseModeShow uses show command output classification rules.
	// Use this for output from show commands (bgp summary, interface terse, etc.).
	ParseModeShow
)

// Keyword sets for classification
var (
	commands = map[string]bool{
		"set": true, "delete": true, "deactivate": true, "activate": true,
		"protect": true, "unprotect": true, "edit": true, "show": true,
		"request": true, "run": true, "insert": true, "rename": true,
		"copy": true, "top": true, "up": true, "exit": true, "quit": true,
		"commit": true, "rollback": true, "load": true, "save": true,
		"configure": true, "cli": true, "help": true, "clear": true,
		"restart": true, "start": true, "stop": true, "monitor": true,
		"ping": true, "traceroute": true, "ssh": true, "telnet": true,
	}

	sections = map[string]bool{
		"system": true, "chassis": true, "interfaces": true,
		"routing-options": true, "routing-instances": true, "protocols": true,
		"policy-options": true, "firewall": true, "security": true,
		"class-of-service": true, "applications": true, "services": true,
		"snmp": true, "forwarding-options": true, "groups": true,
		"apply-groups": true, "apply-groups-except": true,
		"vlans": true, "bridge-domains": true,
		"virtual-chassis": true, "multi-chassis": true, "access": true,
		"ethernet-switching-options": true, "switch-options": true,
		"poe": true, "event-options": true, "accounting-options": true,
		"logical-systems": true, "tenants": true,
		"evpn": true, "vxlan": true, "mac-vrf": true, "virtual-switch": true,
		"overlay": true, "underlay": true,
		"dynamic-profiles": true, "subscriber-management": true,
		"unified-edge": true, "diameter": true, "aaa": true,
		"address-assignment": true, "access-profile": true,
		"openconfig": true, "telemetry": true, "streaming-telemetry": true,
		"grpc": true, "gnmi": true,
	}

	protocols = map[string]bool{
		"ospf": true, "ospf3": true, "bgp": true, "isis": true, "is-is": true,
		"rip": true, "ripng": true, "ldp": true, "rsvp": true,
		"mpls": true, "vpls": true, "evpn": true, "pim": true,
		"igmp": true, "mld": true, "msdp": true, "bfd": true,
		"lacp": true, "lldp": true, "lldp-med": true, "rstp": true,
		"mstp": true, "vstp": true, "stp": true, "vrrp": true,
		"dot1x": true, "oam": true, "cfm": true,
		"tcp": true, "udp": true, "icmp": true, "icmp6": true,
		"icmpv6": true, "gre": true, "ipip": true, "esp": true,
		"ah": true, "sctp": true,
		"inet": true, "inet6": true, "iso": true, "ccc": true,
		"bridge": true, "ethernet-switching": true,
		"inet-vpn": true, "inet6-vpn": true, "l2vpn": true,
		"ssh": true, "telnet": true, "ftp": true, "tftp": true,
		"http": true, "https": true, "ntp": true, "dns": true,
		"dhcp": true, "radius": true, "tacplus": true, "syslog": true,
		"netconf": true, "junoscript": true,
		"vxlan": true, "vtep": true, "vni": true, "esi": true,
		"l2circuit": true, "l3vpn": true, "mc-lag": true,
		"igmp-snooping": true, "mld-snooping": true, "l2-learning": true,
		"source-packet-routing": true, "spring": true, "srv6": true,
		"segment-routing": true, "pcep": true, "te": true,
		"sr-te": true, "sr-mpls": true, "sr-policy": true,
		"pppoe": true, "ppp": true, "l2tp": true, "dhcpv6": true,
		"diameter": true, "gx": true, "gy": true,
		"nasreq": true, "subscriber": true,
		"ike": true, "ipsec": true,
		"alg": true, "sip": true, "h323": true, "mgcp": true,
		"sccp": true, "rtsp": true, "pptp": true, "sunrpc": true, "msrpc": true,
		"gnmi": true, "grpc": true, "openconfig": true,
	}

	actions = map[string]bool{
		"accept": true, "reject": true, "discard": true, "deny": true,
		"permit": true, "next": true, "next-term": true,
		"count": true, "log": true, "syslog": true, "sample": true,
		"port-mirror": true, "analyzer": true,
		"next-hop": true, "self": true, "table": true, "policy": true,
		"community": true, "local-preference": true, "metric": true,
		"origin": true, "as-path": true, "as-path-prepend": true, "med": true,
		"preference": true, "tag": true, "color": true, "color2": true,
		"load-balance": true, "install-nexthop": true,
		"loss-priority": true, "loss-priority-high": true, "loss-priority-low": true,
		"loss-priority-medium-high": true, "loss-priority-medium-low": true,
		"forwarding-class": true, "forwarding-class-except": true,
		"policer": true, "three-color-policer": true,
		"dscp": true, "traffic-class": true,
		"tunnel": true, "ipsec-vpn": true,
		"source-nat": true, "destination-nat": true, "static-nat": true,
		"first-fragment": true, "fragment-offset": true, "fragment-offset-except": true,
		"is-fragment": true, "fragment-flags": true,
		"tcp-initial": true, "tcp-established": true, "tcp-flags": true,
		"syn": true, "ack": true, "fin": true, "rst": true, "push": true, "urgent": true,
		"icmp-type": true, "icmp-type-except": true,
		"icmp-code": true, "icmp-code-except": true,
		"packet-length": true, "packet-length-except": true,
		"ttl": true, "ttl-except": true,
		"hop-limit": true, "hop-limit-except": true,
		"payload-protocol": true, "payload-protocol-except": true,
		"traffic-type": true, "traffic-type-except": true,
		"source-mac-address": true, "destination-mac-address": true,
		"ether-type": true, "vlan-ether-type": true,
		"user-vlan-id": true, "learn-vlan-id": true,
		"dot1q-tag": true, "dot1q-user-priority": true,
		"interface": true, "interface-group": true, "interface-group-except": true,
		"interface-set": true, "ifl-number": true,
		"input-interface": true, "output-interface": true,
		"next-header": true, "next-header-except": true,
		"extension-header": true, "extension-header-except": true,
		"ip-options": true, "ip-options-except": true,
		"flexible-match-mask": true, "flexible-match-range": true,
		"loss-priority-except": true,
		"packet-length-range":  true, "port-except": true,
		"prefix-list-except": true, "source-class": true, "destination-class": true,
		"service-filter-hit": true, "policy-map": true,
	}

	keywords = map[string]bool{
		"version": true, "host-name": true, "domain-name": true,
		"name-server": true, "root-authentication": true, "login": true,
		"user": true, "class": true, "authentication": true,
		"encrypted-password": true, "ssh-rsa": true, "ssh-dsa": true,
		"ssh-ecdsa": true, "ssh-ed25519": true,
		"description": true, "disable": true, "enable": true,
		"inactive": true, "apply-macro": true, "apply-path": true,
		"unit": true, "family": true, "address": true, "vlan-id": true,
		"vlan-tagging": true, "flexible-vlan-tagging": true,
		"native-vlan-id": true, "mtu": true, "speed": true,
		"duplex": true, "auto-negotiation": true, "no-auto-negotiation": true,
		"gigether-options": true, "ether-options": true,
		"aggregated-ether-options": true, "link-speed": true,
		"minimum-links": true, "lacp": true, "active": true, "passive": true,
		"fast": true, "slow": true, "force-up": true,
		"interface-range": true, "member": true, "members": true,
		"interface-mode": true, "trunk": true, "access": true,
		"scripts": true, "language": true, "synchronize": true,
		"login-alarms": true, "login-tip": true, "permissions": true,
		"uid": true, "gid": true, "password": true, "format": true,
		"port": true, "root-login": true, "protocol-version": true,
		"auto-snapshot": true, "time-zone": true,
		"filter": true, "term": true, "from": true, "then": true,
		"source-address": true, "destination-address": true,
		"source-port": true, "destination-port": true,
		"source-prefix-list": true, "destination-prefix-list": true,
		"protocol": true, "prefix-list": true, "prefix-list-filter": true,
		"route-filter": true, "community-count": true, "as-path-group": true,
		"rib-group": true, "rib": true, "static": true, "route": true,
		"qualified-next-hop": true, "preference": true, "tag": true,
		"no-readvertise": true, "retain": true, "no-retain": true,
		"discard": true, "reject": true, "receive": true,
		"aggregate": true, "generate": true, "martians": true,
		"router-id": true, "autonomous-system": true, "confederation": true,
		"instance-type": true, "interface-routes": true,
		"area": true, "interface": true, "neighbor": true, "group": true,
		"type": true, "peer-as": true, "local-as": true, "import": true,
		"export": true, "local-address": true, "authentication-key": true,
		"authentication-type": true, "bfd-liveness-detection": true,
		"minimum-interval": true, "multiplier": true, "hold-time": true,
		"damping": true, "multihop": true, "no-client-reflect": true,
		"cluster": true, "remove-private": true,
		"default-metric": true, "reference-bandwidth": true,
		"traffic-engineering": true, "shortcuts": true, "no-nssa-abr": true,
		"stub": true, "nssa": true, "default-lsa": true, "summaries": true,
		"virtual-link": true, "transit-area": true,
		"label-switched-path": true, "path": true, "primary": true,
		"secondary": true, "standby": true, "bandwidth": true,
		"priority": true, "hop-limit": true, "record": true, "cspf": true,
		"node-link-protection": true, "fast-reroute": true,
		"detour": true, "admin-group": true, "include": true,
		"include-any": true, "exclude": true, "optimize-timer": true,
		"revert-timer": true, "signaled-bandwidth": true,
		"zone": true, "security-zone": true, "address-book": true,
		"host-inbound-traffic": true, "system-services": true,
		"policies": true, "policy": true, "match": true, "application": true,
		"source-zone": true, "destination-zone": true, "nat": true,
		"source": true, "destination": true, "pool": true,
		"rule-set": true, "rule": true,
		"translation-type": true, "translated": true,
		"screen": true, "ids-option": true, "icmp": true, "ip": true,
		"tcp-rst": true, "session-close": true, "alarm-threshold": true,
		"flow": true, "tcp-session": true, "tcp-mss": true,
		"allow-dns-reply": true, "allow-embedded-icmp": true,
		"ike": true, "gateway": true, "proposal": true, "ipsec": true,
		"vpn": true, "tunnel": true, "establish-tunnels": true,
		"immediately": true, "on-traffic": true, "responder-only": true,
		"bind-interface": true, "ike-policy": true, "ipsec-policy": true,
		"pre-shared-key": true, "ascii-text": true, "certificate": true,
		"local-identity": true, "remote-identity": true,
		"dead-peer-detection": true, "interval": true, "threshold": true,
		"general-ikeid": true, "no-anti-replay": true,
		"trap-group": true, "trap-options": true, "categories": true,
		"targets": true, "community-name": true, "authorization": true,
		"read-only": true, "read-write": true, "view": true,
		"client-list": true, "interface-list": true,
		"location": true, "contact": true, "community": true,
		"storm-control-profiles": true, "storm-control": true,
		"analyzer": true, "port-mirroring": true, "helpers": true,
		"ip-version": true, "ip-protocol": true, "ipv4": true, "ipv6": true,
		"ip-destination-address": true, "ip-source-address": true,
		"ip6-destination-address": true, "ip6-source-address": true,
		"router-advertisement": true, "router-solicitation": true,
		"neighbor-advertisement": true, "neighbor-solicitation": true,
		"dhcpv6-client": true, "dhcp-client": true,
		"client-type": true, "client-ia-type": true, "ia-na": true, "ia-pd": true,
		"rapid-commit": true, "client-identifier": true,
		"duid-type": true, "duid-llt": true, "duid-ll": true,
		"stateful": true, "stateless": true,
		"default": true,
		"inactive:": true,
		"vni": true, "vtep-source-interface": true, "extended-vni-list": true,
		"encapsulation": true, "multicast-mode": true, "ingress-replication": true,
		"route-distinguisher": true, "vrf-target": true,
		"vrf-import": true, "vrf-export": true, "vrf-table-label": true,
		"auto-export": true, "auto-rt": true,
		"ethernet-segment": true, "esi": true, "all-active": true,
		"single-active": true, "designated-forwarder-election": true,
		"df-election-type": true, "recovery-timer": true,
		"default-gateway": true, "advertise-default-gateway": true,
		"no-arp-suppression": true, "proxy-arp": true, "proxy-nd": true,
		"virtual-router": true, "vrf": true, "layer2-control": true,
		"interconnect": true, "no-vrf-propagate-ttl": true,
		"iccp": true, "peer": true, "liveness-detection": true,
		"redundancy-group": true, "preempt": true,
		"node-segment": true, "index-range": true, "srgb": true, "srlb": true,
		"sid": true, "prefix-segment": true, "adjacency-segment": true,
		"binding-segment": true, "tilfa": true, "ti-lfa": true,
		"post-convergence-lfa": true, "backup-selection": true,
		"segment-list": true, "compute": true, "explicit": true,
		"sr-te-template": true, "lsp-external-controller": true,
		"pce-controlled": true, "delegate": true, "report": true,
		"stateful-pce": true, "pce-peer": true, "destination-prefix": true,
		"locator": true, "end-sid": true, "end-x-sid": true, "end-dt": true,
		"source-routing-header": true, "encapsulation-mode": true,
		"demux-source": true, "underlying-interface": true,
		"client-profile": true, "server-profile": true,
		"ppp-options": true, "pppoe-options": true,
		"service-name-table": true, "max-sessions": true,
		"session-limit": true, "service-profile": true,
		"authentication-order": true, "accounting": true,
		"radius-server": true, "tacplus-server": true,
		"secret": true, "timeout": true, "retry": true,
		"network": true, "range": true, "low": true, "high": true,
		"dhcp-attributes": true, "option": true, "option-82": true,
		"relay-option": true, "relay-agent-information": true,
		"subscriber-id": true, "agent-circuit-id": true, "agent-remote-id": true,
		"lns": true, "lac": true, "l2tp-access-profile": true,
		"receive-window": true, "retransmit-interval": true,
		"maximum-receive-window": true, "tunnel-group": true,
		"traffic-control": true, "traffic-control-profile": true,
		"scheduler-map": true, "shaping-rate": true, "guaranteed-rate": true,
		"sensor": true, "sensor-name": true, "resource": true,
		"reporting-rate": true, "polling-interval": true,
		"change-update": true, "on-change": true, "target-defined": true,
		"export-profile": true, "local-port": true,
		"remote-address": true, "remote-port": true,
		"transport": true, "encoding": true, "subscription": true,
		"xpath": true, "sensor-based-stats": true, "file": true,
		"commit-script": true, "op-script": true, "event-script": true,
		"slax": true, "python": true, "allow-commands": true, "deny-commands": true,
		"extension-service": true, "request-response": true, "notification": true,
	}

	valueKeywords = map[string]bool{
		"description":        true,
		"host-name":          true,
		"domain-name":        true,
		"name-server":        true,
		"encrypted-password": true,
		"authentication-key": true,
		"pre-shared-key":     true,
		"ascii-text":         true,
		"community-name":     true,
		"version":            true,
	}

	interfacePattern  = regexp.MustCompile(`^([gx]e|et|so|fe|at|t1|t3|e1|e3|mge|vcp|si|lsq|rlsq)-\d+/\d+/\d+(:\d+)?(\.\d+)?$|^(ae|reth|lo|em|me|irb|vlan|fab|gr|ip|vt|lt|ms|sp|pp|pd|pe|demux|dsc|mtun|pimd|pime|tap|lsi|st|vtep|fti|jsrv|gre|ipip)\d*(\.\d+)?$|^[efm]xp\d+(\.\d+)?$|^vme(\.\d+)?$|^all$`)
	ipv4Pattern       = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)
	ipv4PrefixPattern = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}/\d{1,2}$`)
	ipv6Pattern       = regexp.MustCompile(`^[0-9a-fA-F:]+:[0-9a-fA-F:]*$`)
	ipv6PrefixPattern = regexp.MustCompile(`^[0-9a-fA-F:]+:[0-9a-fA-F:]*/\d{1,3}$`)
	macPattern        = regexp.MustCompile(`^([0-9a-fA-F]{2}:){5}[0-9a-fA-F]{2}(/\d{1,2})?$`)
	numberPattern     = regexp.MustCompile(`^\d+[gmkGMK]?$`)
	communityPattern  = regexp.MustCompile(`^\d+:\d+$`)
	asnPattern        = regexp.MustCompile(`^[Aa][Ss]\d+$`)
	unitNumberPattern = regexp.MustCompile(`^\d+$`)

	statesGood = map[string]bool{
		"up": true, "establ": true, "established": true,
		"full": true, "master": true, "primary": true,
		"enabled": true, "ok": true, "online": true,
		"running": true, "ready": true, "complete": true,
	}

	statesBad = map[string]bool{
		"down": true, "idle": true, "failed": true,
		"error": true, "offline": true, "disabled": true,
		"unreachable": true, "timeout": true,
		"active": true, "connect": true,
		"opensent": true, "openconfirm": true,
	}

	statesWarning = map[string]bool{
		"init": true, "2way": true, "exstart": true,
		"exchange": true, "loading": true,
		"flapping": true, "pending": true, "waiting": true,
		"starting": true, "stopping": true,
	}

	statesNeutral = map[string]bool{
		"inactive": true, "standby": true, "backup": true,
		"n/a": true, "none": true,
	}

	columnHeaders = map[string]bool{
		"neighbor": true, "peer": true, "state": true,
		"interface": true, "admin": true, "link": true,
		"proto": true, "local": true, "remote": true,
		"as": true, "inpkt": true, "outpkt": true,
		"flaps": true, "uptime": true, "up/dn": true,
		"mtu": true, "speed": true, "type": true,
		"area": true, "dr": true, "bdr": true,
		"metric": true, "localpref": true, "med": true,
		"nexthop": true, "gateway": true, "flags": true,
		"outq": true, "prefixes": true, "paths": true,
	}

	statusSymbols = map[string]bool{
		"*": true, "+": true, "-": true, ">": true,
		"B": true, "O": true, "I": true, "S": true,
		"L": true, "D": true,
	}

	timeDurationPattern  = regexp.MustCompile(`^(\d+[wdhms])+$|^\d+:\d{2}(:\d{2})?$`)
	percentagePattern    = regexp.MustCompile(`^\d+(\.\d+)?%$`)
	byteSizePattern      = regexp.MustCompile(`^\d+(\.\d+)?[KMGTP][Bb]?$`)
	routeProtocolPattern = regexp.MustCompile(`^\[(BGP|OSPF|OSPF3|ISIS|RIP|Static|Direct|Local|Aggregate)/\d+\]$`)
	tableNamePattern     = regexp.MustCompile(`^(inet|inet6|mpls|bgp|iso|l2vpn)\.\d+:?$`)
	tabularPattern       = regexp.MustCompile(`\w+\s{2,}\w+\s{2,}\w+`)

	promptPattern = regexp.MustCompile(`^(\{[^}]+\})?(\[edit[^\]]*\])?([\s\x00-\x1f]*)([\w-]+)@([\w.-]+)([>#])(\s*)(.*?)\n?$`)
)

// classifyWord determines the token type for a word, auto-detecting
// parse mode on first use if needed.
func (st *LexerState) classifyWord(word string) TokenType {
	if st.parseMode == ParseModeAuto && !st.detectedMode {
		st.parseMode = detectParseMode(st.sample)
		st.detectedMode = true
	}

	lower := strings.ToLower(word)

	if st.parseMode == ParseModeShow {
		return st.classifyShowWord(word, lower)
	}
	return st.classifyConfigWord(word, lower)
}

// classifyConfigWord handles configuration syntax classification.
func (st *LexerState) classifyConfigWord(word, lower string) TokenType {
	if st.expectingUnit && unitNumberPattern.MatchString(word) {
		st.expectingUnit = false
		return TokenUnit
	}
	if st.expectingValue {
		st.expectingValue = false
		return TokenValue
	}
	if asnPattern.MatchString(word) {
		return TokenASN
	}
	if commands[lower] {
		st.lastToken = lower
		return TokenCommand
	}
	if sections[lower] {
		st.lastToken = lower
		return TokenSection
	}
	if protocols[lower] {
		st.lastToken = lower
		return TokenProtocol
	}
	if actions[lower] {
		st.lastToken = lower
		return TokenAction
	}
	if keywords[lower] {
		if valueKeywords[lower] {
			st.expectingValue = true
		}
		if lower == "unit" {
			st.expectingUnit = true
		}
		st.lastToken = lower
		return TokenKeyword
	}
	return classifySharedPatterns(word)
}

// classifyShowWord handles show command output classification.
func (st *LexerState) classifyShowWord(word, lower string) TokenType {
	if statesGood[lower] {
		return TokenStateGood
	}
	if statesBad[lower] {
		return TokenStateBad
	}
	if statesWarning[lower] {
		return TokenStateWarning
	}
	if statesNeutral[lower] {
		return TokenStateNeutral
	}
	if len(word) <= 2 && statusSymbols[word] {
		return TokenStatusSymbol
	}
	if timeDurationPattern.MatchString(word) {
		return TokenTimeDuration
	}
	if percentagePattern.MatchString(word) {
		return TokenPercentage
	}
	if byteSizePattern.MatchString(word) {
		return TokenByteSize
	}
	if routeProtocolPattern.MatchString(word) {
		return TokenRouteProtocol
	}
	if tableNamePattern.MatchString(lower) {
		return TokenTableName
	}
	if columnHeaders[lower] {
		return TokenColumnHeader
	}
	return classifySharedPatterns(word)
}

// operatorChars are single-character symbols that fall through every
// keyword/state table in both modes. "+" and "-" reach here through
// scanWord, so show mode gets first crack at them as status symbols (see
// classifyShowWord); "=", "|" and "/" are caught by the switch in Token
// before scanWord runs.
var operatorChars = map[string]bool{
	"+": true, "-": true, "=": true, "|": true, "/": true,
}

// classifySharedPatterns handles patterns common to both config and show modes.
func classifySharedPatterns(word string) TokenType {
	if operatorChars[word] {
		return TokenOperator
	}
	if interfacePattern.MatchString(word) {
		return TokenInterface
	}
	if ipv4PrefixPattern.MatchString(word) {
		return TokenIPv4Prefix
	}
	if ipv4Pattern.MatchString(word) {
		return TokenIPv4
	}
	if macPattern.MatchString(word) {
		return TokenMAC
	}
	if communityPattern.MatchString(word) {
		return TokenCommunity
	}
	if ipv6PrefixPattern.MatchString(word) {
		return TokenIPv6Prefix
	}
	if ipv6Pattern.MatchString(word) {
		return TokenIPv6
	}
	if numberPattern.MatchString(word) {
		return TokenNumber
	}
	return TokenIdentifier
}

// detectParseMode analyzes a sample of input to determine if it's config
// or show output, using the same heuristics regardless of how much of
// the document has been seen so far.
func detectParseMode(sample string) ParseMode {
	if len(sample) > parseModeDetectionSampleSize {
		sample = sample[:parseModeDetectionSampleSize]
	}
	lower := strings.ToLower(sample)

	configScore := 0
	configIndicators := []string{"set ", "delete ", "{", "}", ";", "host-name", "policy-statement"}
	for _, ind := range configIndicators {
		if strings.Contains(lower, ind) {
			configScore++
		}
	}

	showScore := 0
	showIndicators := []string{
		"establ", "idle", "2way",
		"inet.0", "inet6.0", "bgp.evpn",
		"flaps", "up/dn",
		"physical interface", "logical interface",
	}
	for _, ind := range showIndicators {
		if strings.Contains(lower, ind) {
			showScore++
		}
	}

	if tabularPattern.MatchString(sample) {
		showScore += 2
	}

	if showScore >= 2 && showScore > configScore {
		return ParseModeShow
	}
	return ParseModeConfig
}

// IsPrompt checks if the input matches a JunOS CLI prompt pattern.
// Matches formats like "user@router>" or "[edit] user@router#".
func IsPrompt(input string) bool {
	return promptPattern.MatchString(strings.TrimSpace(input))
}
