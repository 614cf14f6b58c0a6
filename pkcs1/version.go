// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkcs1

import (
	"fmt"

	"github.com/olekhov/formats/der"
)

// Version is the version field of an RSAPrivateKey, defined in RFC 8017,
// Appendix A.1.2. It encodes the number of primes the key was built from,
// not a revision of the format.
type Version der.Int

const (
	// VersionTwoPrime marks a key with exactly two primes.
	VersionTwoPrime Version = 0
	// VersionMulti marks a key with three or more primes. Such a key must
	// carry an otherPrimeInfos field.
	VersionMulti Version = 1
)

// IsMulti reports whether v marks a multi-prime key.
func (v Version) IsMulti() bool {
	return v == VersionMulti
}

// Tag returns der.TagInteger.
func (Version) Tag() der.Tag {
	return der.TagInteger
}

// ValueLen returns the number of contents octets of the encoded value.
func (v Version) ValueLen() (int, error) {
	return der.Int(v).ValueLen()
}

// EncodeValue writes the contents octets.
func (v Version) EncodeValue(e *der.Encoder) error {
	return der.Int(v).EncodeValue(e)
}

// DecodeValue decodes the contents octets. Version numbers other than
// VersionTwoPrime and VersionMulti are rejected with ErrVersion.
func (v *Version) DecodeValue(d *der.Decoder, length int) error {
	var i der.Int
	if err := i.DecodeValue(d, length); err != nil {
		return err
	}
	if i != der.Int(VersionTwoPrime) && i != der.Int(VersionMulti) {
		return fmt.Errorf("%w: %d", ErrVersion, int64(i))
	}
	*v = Version(i)
	return nil
}
