package graph

import (
	"github.com/dball/osinfo/internal/list"
	"github.com/dball/osinfo/internal/model"
)

// DeviceLinked is a product with its own device links.
type DeviceLinked interface {
	Node
	DeviceLinks() *list.List[*model.DeviceLink]
}

// DeviceLinks returns the supported device links of p and of the products it derives from or
// clones, in traversal order. The first link to a device wins. Devices marked unsupported by
// any product on the walk are left out, as are links rejected by keep, if given.
func DeviceLinks[P DeviceLinked](resolve Resolver[P], p P, keep func(*model.DeviceLink) bool) *list.List[*model.DeviceLink] {
	own := func(q P) *list.List[*model.DeviceLink] { return q.DeviceLinks() }
	return collect(resolve, p, own, (*model.DeviceLink).Supported, keep)
}

// FirmwareHolder is a product with its own firmware entries.
type FirmwareHolder interface {
	Node
	Firmwares() *list.List[*model.Firmware]
}

// Firmwares returns the supported firmware entries of p and of the products it derives from
// or clones, by the same rules as DeviceLinks.
func Firmwares[P FirmwareHolder](resolve Resolver[P], p P, keep func(*model.Firmware) bool) *list.List[*model.Firmware] {
	own := func(q P) *list.List[*model.Firmware] { return q.Firmwares() }
	return collect(resolve, p, own, (*model.Firmware).Supported, keep)
}

func collect[P Node, T list.Identified](
	resolve Resolver[P],
	p P,
	own func(P) *list.List[T],
	supported func(T) bool,
	keep func(T) bool,
) (result *list.List[T]) {
	found := list.New[T]()
	unsupported := list.New[T]()
	ForeachRelated(resolve, p, InheritanceMask, func(q P) {
		own(q).Each(func(element T) bool {
			id := element.ID()
			if !supported(element) {
				if !unsupported.Has(id) {
					unsupported.Add(element)
				}
			} else if !found.Has(id) {
				found.Add(element)
			}
			return true
		})
	})
	result = list.Subtract(found, unsupported)
	if keep != nil {
		result = list.Filtered(result, keep)
	}
	return
}
