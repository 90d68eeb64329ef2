// Package candv provides named, enumerable constants grouped into ordered,
// introspectable containers, with optional attached values, human-readable
// metadata, nested hierarchies, and primitive-serialization support.
//
// Unlike iota-based enums, candv constants are first-class objects: each one
// knows its name, its container, and its dotted full name, and each container
// is an ordered registry that can be enumerated, looked up, and exported.
//
// # Declaring containers
//
// A container is a struct embedding Constants whose exported fields declare
// the members. Register builds the registry at definition time, binding each
// field under its field name in declaration order:
//
//	type teams struct {
//	    candv.Constants
//	    RED  *candv.SimpleConstant
//	    BLUE *candv.SimpleConstant
//	}
//
//	var Teams = candv.Register("Teams", &teams{
//	    RED:  candv.NewSimple(),
//	    BLUE: candv.NewSimple(),
//	})
//
// After registration the container is read-only. Declaration order is
// preserved and observable through every enumeration method:
//
//	Teams.Names()          // ["RED", "BLUE"]
//	Teams.Get("RED")       // <constant 'Teams.RED'>, nil
//	Teams.Has("GREEN")     // false
//
// Containers can also be built programmatically with New or Build when the
// member set is not known statically.
//
// # Values and metadata
//
// ValueConstant attaches a value of any type; VerboseConstant attaches a
// display name and help text; VerboseValueConstant attaches both. The Values
// container adds value-based lookups, where the first declared match wins:
//
//	type statuses struct {
//	    candv.Values[int]
//	    OK    *candv.ValueConstant[int]
//	    FAIL  *candv.ValueConstant[int]
//	}
//
//	var Statuses = candv.Register("Statuses", &statuses{
//	    OK:   candv.NewValue(0),
//	    FAIL: candv.NewValue(1),
//	})
//
//	Statuses.GetByValue(0) // Statuses.OK, nil
//	Statuses.AllValues()   // [0, 1]
//
// # Hierarchies
//
// Any constant can be promoted into a Group with ToGroup. A group is both a
// member of its parent and a container for its own members, so trees nest to
// arbitrary depth. Metadata and values travel with the group:
//
//	var Weapons = candv.New("Weapons",
//	    candv.M("SWORD", candv.NewSimple()),
//	    candv.M("GUNS", candv.NewVerbose("Guns", "ranged weapons").ToGroup(
//	        candv.M("PISTOL", candv.NewSimple()),
//	        candv.M("RIFLE", candv.NewSimple()),
//	    )),
//	)
//
//	g, _ := Weapons.Get("GUNS")
//	g.FullName() // "Weapons.GUNS"
//
// # Serialization
//
// Every constant, group, and container implements Primitiver, producing a
// tree of maps, slices, and scalars. Attached values are unwrapped along the
// way: time values become RFC 3339 strings, nested Primitiver values recurse,
// and func() any values are called. The lib/export package encodes primitives
// as JSON, YAML, or msgpack, and lib/htmlview renders container trees as
// HTML.
//
// # Errors
//
// Definition-time misuse (rebinding a constant, duplicate names, a container
// without an embedded Constants) panics in Register, New, and ToGroup, since
// containers are declared at package level. Lookups return errors wrapping
// the package's sentinel errors; check them with IsMissingMember and
// IsValueNotFound.
//
// Containers are immutable once built and therefore safe for concurrent
// reads; the package does no locking and no I/O.
package candv
