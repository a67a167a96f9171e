package binwire_test

import (
	"fmt"

	"github.com/unkn0wn-root/binwire"
)

// A composite type gets its wire layout by composing the primitive instances:
// Concat on the encode side, FlatMap/Map on the decode side. Field order IS
// the wire format.
type point struct {
	X, Y int32
	Tag  string
}

type pointSerial struct{}

func (pointSerial) Serialize(p point) binwire.Put {
	return binwire.Int32{}.Serialize(p.X).
		Concat(binwire.Int32{}.Serialize(p.Y)).
		Concat(binwire.String{}.Serialize(p.Tag))
}

func (pointSerial) Deserialize() binwire.Get[point] {
	return binwire.FlatMap(binwire.Int32{}.Deserialize(), func(x int32) binwire.Get[point] {
		return binwire.FlatMap(binwire.Int32{}.Deserialize(), func(y int32) binwire.Get[point] {
			return binwire.Map(binwire.String{}.Deserialize(), func(tag string) point {
				return point{X: x, Y: y, Tag: tag}
			})
		})
	})
}

func Example() {
	enc := binwire.Encode[point](pointSerial{}, point{X: -3, Y: 7, Tag: "spawn"})
	p, err := binwire.Decode[point](pointSerial{}, enc)
	fmt.Println(p.X, p.Y, p.Tag, err)
	// Output: -3 7 spawn <nil>
}
