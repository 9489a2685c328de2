package govern

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	bin "github.com/gagliardetto/binary"
)

// Account records serialize as borsh behind an 8-byte discriminator derived
// from the record's type name, matching the on-chain account layout. The
// discriminator lets a decoder reject bytes belonging to a different record
// kind at the same address.

// AccountDiscriminator returns the 8-byte discriminator for the named
// account type.
func AccountDiscriminator(name string) [8]byte {
	sum := sha256.Sum256([]byte("account:" + name))

	var disc [8]byte
	copy(disc[:], sum[:8])

	return disc
}

// EncodeAccount borsh-encodes v behind the discriminator for name.
func EncodeAccount(name string, v any) ([]byte, error) {
	data, err := bin.MarshalBorsh(v)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal %s account: %w", name, err)
	}

	disc := AccountDiscriminator(name)

	return append(disc[:], data...), nil
}

// DecodeAccount checks the discriminator for name and borsh-decodes the
// remaining bytes into v.
func DecodeAccount(name string, data []byte, v any) error {
	disc := AccountDiscriminator(name)
	if len(data) < len(disc) {
		return fmt.Errorf("account data too short for %s: %d bytes", name, len(data))
	}
	if !bytes.Equal(data[:len(disc)], disc[:]) {
		return fmt.Errorf("account discriminator mismatch: data does not hold a %s", name)
	}

	if err := bin.UnmarshalBorsh(v, data[len(disc):]); err != nil {
		return fmt.Errorf("unable to unmarshal %s account: %w", name, err)
	}

	return nil
}
