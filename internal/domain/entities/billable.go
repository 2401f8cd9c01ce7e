package entities

import "strings"

// BillableRef identifies a local entity of any kind: the kind discriminator
// plus the id within that kind.

type BillableRef struct {
	Type string `json:"billable_type"`
	ID   string `json:"billable_id"`
}

var keyTypeEscaper = strings.NewReplacer("%", "%25", "#", "%23")

// Key is the composite key used by stores ("Organization#42"). The type is
// escaped so the first "#" always separates type from id.
func (r BillableRef) Key() string {
	return keyTypeEscaper.Replace(r.Type) + "#" + r.ID
}

func (r BillableRef) String() string {
	return r.Key()
}

// Normalize trims both parts.
func (r BillableRef) Normalize() BillableRef {
	return BillableRef{Type: strings.TrimSpace(r.Type), ID: strings.TrimSpace(r.ID)}
}

func (r BillableRef) IsZero() bool {
	return r.Type == "" || r.ID == ""
}

// Billable is a local entity that may own a remote user.
//
// RemoteUserData returns the entity-declared base payload using MangoPay field
// names ("Name", "Email", "HeadquartersAddress", ...). Caller overrides are
// merged on top of it.
type Billable interface {
	BillableRef() BillableRef
	RemoteUserData() map[string]any
}

// BillableRecord is a Billable carried by value, used when the entity data
// arrives with the request.

type BillableRecord struct {
	Ref  BillableRef
	Data map[string]any
}

var _ Billable = BillableRecord{}

func (b BillableRecord) BillableRef() BillableRef {
	return b.Ref
}

func (b BillableRecord) RemoteUserData() map[string]any {
	return b.Data
}
