package binwire

import "github.com/google/uuid"

// UUID is the Serial instance for uuid.UUID: the 16 raw bytes, no framing.
type UUID struct{}

var _ Serial[uuid.UUID] = UUID{}

var getUUID = ByReadingBytes(16, func(b []byte) (uuid.UUID, error) {
	return uuid.FromBytes(b)
})

func (UUID) Serialize(v uuid.UUID) Put {
	return ByWritingBytes(16, func(b []byte) { copy(b, v[:]) })
}

func (UUID) Deserialize() Get[uuid.UUID] { return getUUID }
