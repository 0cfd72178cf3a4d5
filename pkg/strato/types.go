package strato

import (
	"time"
)

// Action statuses reported by the API.
const (
	ActionStatusRunning = "running"
	ActionStatusSuccess = "success"
	ActionStatusError   = "error"
)

// Server statuses reported by the API.
const (
	ServerStatusInitializing = "initializing"
	ServerStatusStarting     = "starting"
	ServerStatusRunning      = "running"
	ServerStatusStopping     = "stopping"
	ServerStatusOff          = "off"
	ServerStatusDeleting     = "deleting"
	ServerStatusRebuilding   = "rebuilding"
	ServerStatusMigrating    = "migrating"
	ServerStatusUnknown      = "unknown"
)

// Action represents a server-side asynchronous operation. Actions are
// produced as a side effect of mutating calls and must be polled to observe
// completion; Finished stays nil while the action is running.
type Action struct {
	ID        int64             `json:"id"                 yaml:"id"`
	Command   string            `json:"command"            yaml:"command"`
	Status    string            `json:"status"             yaml:"status"`
	Progress  int               `json:"progress"           yaml:"progress"`
	Started   time.Time         `json:"started"            yaml:"started"`
	Finished  *time.Time        `json:"finished"           yaml:"finished"`
	Error     *ActionError      `json:"error,omitempty"    yaml:"error,omitempty"`
	Resources []ActionResource  `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// Running reports whether the action has not yet reached a terminal status.
func (a *Action) Running() bool {
	return a.Status == ActionStatusRunning
}

// ActionError carries the failure detail of a terminal "error" action.
type ActionError struct {
	Code    string `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// ActionResource names a resource an action operated on.
type ActionResource struct {
	ID   int64  `json:"id"   yaml:"id"`
	Type string `json:"type" yaml:"type"`
}

// Server represents a Strato server.
//
// Action, NextActions, and RootPassword are envelope auxiliaries: they are
// only populated on responses whose envelope carried those sibling keys
// (server creation, password reset, console requests).
type Server struct {
	ID           int64             `json:"id"                      yaml:"id"`
	Name         string            `json:"name"                    yaml:"name"`
	Status       string            `json:"status"                  yaml:"status"`
	PublicNet    *ServerPublicNet  `json:"public_net,omitempty"    yaml:"public_net,omitempty"`
	ServerType   *ServerType       `json:"server_type,omitempty"   yaml:"server_type,omitempty"`
	Datacenter   *Datacenter       `json:"datacenter,omitempty"    yaml:"datacenter,omitempty"`
	Image        *Image            `json:"image,omitempty"         yaml:"image,omitempty"`
	ISO          *ISO              `json:"iso,omitempty"           yaml:"iso,omitempty"`
	Volumes      []int64           `json:"volumes,omitempty"       yaml:"volumes,omitempty"`
	Locked       bool              `json:"locked"                  yaml:"locked"`
	RescueEnable bool              `json:"rescue_enabled"          yaml:"rescue_enabled"`
	Created      time.Time         `json:"created"                 yaml:"created"`
	Labels       map[string]string `json:"labels,omitempty"        yaml:"labels,omitempty"`

	Action       *Action  `json:"action,omitempty"        yaml:"action,omitempty"`
	NextActions  []Action `json:"next_actions,omitempty"  yaml:"next_actions,omitempty"`
	RootPassword string   `json:"root_password,omitempty" yaml:"root_password,omitempty"`
}

// ServerPublicNet describes a server's public network configuration.
type ServerPublicNet struct {
	IPv4        *ServerPublicNetIPv4 `json:"ipv4,omitempty"         yaml:"ipv4,omitempty"`
	IPv6        *ServerPublicNetIPv6 `json:"ipv6,omitempty"         yaml:"ipv6,omitempty"`
	FloatingIPs []int64              `json:"floating_ips,omitempty" yaml:"floating_ips,omitempty"`
}

// ServerPublicNetIPv4 is the primary IPv4 address of a server.
type ServerPublicNetIPv4 struct {
	IP      string `json:"ip"      yaml:"ip"`
	Blocked bool   `json:"blocked" yaml:"blocked"`
	DNSPtr  string `json:"dns_ptr" yaml:"dns_ptr"`
}

// ServerPublicNetIPv6 is the primary IPv6 network of a server.
type ServerPublicNetIPv6 struct {
	IP      string `json:"ip"      yaml:"ip"`
	Blocked bool   `json:"blocked" yaml:"blocked"`
}

// ServerType describes a bookable server size.
type ServerType struct {
	ID          int64   `json:"id"          yaml:"id"`
	Name        string  `json:"name"        yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Cores       int     `json:"cores"       yaml:"cores"`
	Memory      float64 `json:"memory"      yaml:"memory"`
	Disk        int     `json:"disk"        yaml:"disk"`
	StorageType string  `json:"storage_type" yaml:"storage_type"`
}

// Datacenter describes a datacenter and its location.
type Datacenter struct {
	ID          int64     `json:"id"                 yaml:"id"`
	Name        string    `json:"name"               yaml:"name"`
	Description string    `json:"description"        yaml:"description"`
	Location    *Location `json:"location,omitempty" yaml:"location,omitempty"`
}

// Location describes a physical location.
type Location struct {
	ID          int64   `json:"id"          yaml:"id"`
	Name        string  `json:"name"        yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Country     string  `json:"country"     yaml:"country"`
	City        string  `json:"city"        yaml:"city"`
	NetworkZone string  `json:"network_zone" yaml:"network_zone"`
	Latitude    float64 `json:"latitude"    yaml:"latitude"`
	Longitude   float64 `json:"longitude"   yaml:"longitude"`
}

// FloatingIP represents a floating IP address.
type FloatingIP struct {
	ID           int64              `json:"id"                      yaml:"id"`
	Name         string             `json:"name"                    yaml:"name"`
	Description  string             `json:"description"             yaml:"description"`
	IP           string             `json:"ip"                      yaml:"ip"`
	Type         string             `json:"type"                    yaml:"type"`
	Server       *int64             `json:"server"                  yaml:"server"`
	DNSPtr       []FloatingIPDNSPtr `json:"dns_ptr,omitempty"       yaml:"dns_ptr,omitempty"`
	HomeLocation *Location          `json:"home_location,omitempty" yaml:"home_location,omitempty"`
	Blocked      bool               `json:"blocked"                 yaml:"blocked"`
	Created      time.Time          `json:"created"                 yaml:"created"`
	Labels       map[string]string  `json:"labels,omitempty"        yaml:"labels,omitempty"`

	Action *Action `json:"action,omitempty" yaml:"action,omitempty"`
}

// FloatingIPDNSPtr maps a floating IP to its reverse DNS entry.
type FloatingIPDNSPtr struct {
	IP     string `json:"ip"      yaml:"ip"`
	DNSPtr string `json:"dns_ptr" yaml:"dns_ptr"`
}

// SSHKey represents an uploaded SSH public key.
type SSHKey struct {
	ID          int64             `json:"id"               yaml:"id"`
	Name        string            `json:"name"             yaml:"name"`
	Fingerprint string            `json:"fingerprint"      yaml:"fingerprint"`
	PublicKey   string            `json:"public_key"       yaml:"public_key"`
	Created     time.Time         `json:"created"          yaml:"created"`
	Labels      map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// Volume represents a block storage volume.
type Volume struct {
	ID          int64             `json:"id"                 yaml:"id"`
	Name        string            `json:"name"               yaml:"name"`
	Size        int               `json:"size"               yaml:"size"`
	Server      *int64            `json:"server"             yaml:"server"`
	Location    *Location         `json:"location,omitempty" yaml:"location,omitempty"`
	LinuxDevice string            `json:"linux_device"       yaml:"linux_device"`
	Status      string            `json:"status"             yaml:"status"`
	Format      string            `json:"format,omitempty"   yaml:"format,omitempty"`
	Created     time.Time         `json:"created"            yaml:"created"`
	Labels      map[string]string `json:"labels,omitempty"   yaml:"labels,omitempty"`

	Action      *Action  `json:"action,omitempty"       yaml:"action,omitempty"`
	NextActions []Action `json:"next_actions,omitempty" yaml:"next_actions,omitempty"`
}

// Network represents a private network.
type Network struct {
	ID      int64             `json:"id"                yaml:"id"`
	Name    string            `json:"name"              yaml:"name"`
	IPRange string            `json:"ip_range"          yaml:"ip_range"`
	Subnets []NetworkSubnet   `json:"subnets,omitempty" yaml:"subnets,omitempty"`
	Routes  []NetworkRoute    `json:"routes,omitempty"  yaml:"routes,omitempty"`
	Servers []int64           `json:"servers,omitempty" yaml:"servers,omitempty"`
	Created time.Time         `json:"created"           yaml:"created"`
	Labels  map[string]string `json:"labels,omitempty"  yaml:"labels,omitempty"`
}

// NetworkSubnet is a subnet within a network.
type NetworkSubnet struct {
	Type        string `json:"type"         yaml:"type"`
	IPRange     string `json:"ip_range"     yaml:"ip_range"`
	NetworkZone string `json:"network_zone" yaml:"network_zone"`
	Gateway     string `json:"gateway"      yaml:"gateway"`
}

// NetworkRoute is a routing entry within a network.
type NetworkRoute struct {
	Destination string `json:"destination" yaml:"destination"`
	Gateway     string `json:"gateway"     yaml:"gateway"`
}

// Image represents a system or snapshot image.
type Image struct {
	ID          int64             `json:"id"                     yaml:"id"`
	Type        string            `json:"type"                   yaml:"type"`
	Status      string            `json:"status"                 yaml:"status"`
	Name        string            `json:"name"                   yaml:"name"`
	Description string            `json:"description"            yaml:"description"`
	ImageSize   float64           `json:"image_size"             yaml:"image_size"`
	DiskSize    int               `json:"disk_size"              yaml:"disk_size"`
	OSFlavor    string            `json:"os_flavor"              yaml:"os_flavor"`
	OSVersion   string            `json:"os_version,omitempty"   yaml:"os_version,omitempty"`
	CreatedFrom *ActionResource   `json:"created_from,omitempty" yaml:"created_from,omitempty"`
	BoundTo     *int64            `json:"bound_to"               yaml:"bound_to"`
	Created     time.Time         `json:"created"                yaml:"created"`
	Labels      map[string]string `json:"labels,omitempty"       yaml:"labels,omitempty"`

	Action *Action `json:"action,omitempty" yaml:"action,omitempty"`
}

// ISO represents a mountable ISO image.
type ISO struct {
	ID          int64  `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type"        yaml:"type"`
}

// Console carries the connection details returned by a console request.
type Console struct {
	Action   *Action `json:"action,omitempty" yaml:"action,omitempty"`
	WSSURL   string  `json:"wss_url"          yaml:"wss_url"`
	Password string  `json:"password"         yaml:"password"`
}

// Pagination describes the page position of a list response.
type Pagination struct {
	Page         int  `json:"page"          yaml:"page"`
	PerPage      int  `json:"per_page"      yaml:"per_page"`
	PreviousPage *int `json:"previous_page" yaml:"previous_page"`
	NextPage     *int `json:"next_page"     yaml:"next_page"`
	LastPage     *int `json:"last_page"     yaml:"last_page"`
	TotalEntries *int `json:"total_entries" yaml:"total_entries"`
}

// Meta is the metadata sibling carried by list envelopes.
type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}
