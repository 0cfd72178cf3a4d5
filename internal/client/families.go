package client

// family describes one resource family: its URL path segment and the
// envelope keys its responses use. The table replaces per-family endpoint
// code with data consumed by the generic request helpers in request.go.
type family struct {
	path     string // plural URL segment, e.g. "servers"
	singular string // envelope key for single-object responses
	plural   string // envelope key for collection responses
}

var (
	familyServers     = family{path: "servers", singular: "server", plural: "servers"}
	familyFloatingIPs = family{path: "floating_ips", singular: "floating_ip", plural: "floating_ips"}
	familySSHKeys     = family{path: "ssh_keys", singular: "ssh_key", plural: "ssh_keys"}
	familyVolumes     = family{path: "volumes", singular: "volume", plural: "volumes"}
	familyNetworks    = family{path: "networks", singular: "network", plural: "networks"}
	familyImages      = family{path: "images", singular: "image", plural: "images"}
	familyActions     = family{path: "actions", singular: "action", plural: "actions"}
	familyISOs        = family{path: "isos", singular: "iso", plural: "isos"}
	familyLocations   = family{path: "locations", singular: "location", plural: "locations"}
	familyDatacenters = family{path: "datacenters", singular: "datacenter", plural: "datacenters"}
	familyServerTypes = family{path: "server_types", singular: "server_type", plural: "server_types"}
)
