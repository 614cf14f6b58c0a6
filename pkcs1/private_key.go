// Copyright 2026 The formats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkcs1

import (
	"github.com/olekhov/formats/der"
)

// RsaPrivateKey is an RSAPrivateKey as defined in RFC 8017, Appendix A.1.2:
//
//	RSAPrivateKey ::= SEQUENCE {
//	    version           Version,
//	    modulus           INTEGER,  -- n
//	    publicExponent    INTEGER,  -- e
//	    privateExponent   INTEGER,  -- d
//	    prime1            INTEGER,  -- p
//	    prime2            INTEGER,  -- q
//	    exponent1         INTEGER,  -- d mod (p-1)
//	    exponent2         INTEGER,  -- d mod (q-1)
//	    coefficient       INTEGER,  -- (inverse of q) mod p
//	    otherPrimeInfos   OtherPrimeInfos OPTIONAL
//	}
//
// The version field is not stored: it is determined by OtherPrimeInfos, and
// Version derives it. Decoding verifies that the encoded version agrees with
// the fields that are present and reports ErrVersionMismatch otherwise.
type RsaPrivateKey struct {
	// Modulus is the RSA modulus n.
	Modulus der.UIntBytes
	// PublicExponent is the public exponent e.
	PublicExponent der.UIntBytes
	// PrivateExponent is the private exponent d.
	PrivateExponent der.UIntBytes
	// Prime1 is the first prime factor p of n.
	Prime1 der.UIntBytes
	// Prime2 is the second prime factor q of n.
	Prime2 der.UIntBytes
	// Exponent1 is d mod (p-1).
	Exponent1 der.UIntBytes
	// Exponent2 is d mod (q-1).
	Exponent2 der.UIntBytes
	// Coefficient is the CRT coefficient (inverse of q) mod p.
	Coefficient der.UIntBytes
	// OtherPrimeInfos holds the additional primes r_3 through r_u of a
	// multi-prime key, in order. It is empty for a two-prime key.
	OtherPrimeInfos []OtherPrimeInfo
}

// Version returns the version of the key: VersionMulti if the key has
// additional prime infos and VersionTwoPrime otherwise.
func (k *RsaPrivateKey) Version() Version {
	if len(k.OtherPrimeInfos) > 0 {
		return VersionMulti
	}
	return VersionTwoPrime
}

// PublicKey returns the public key of k. The returned key shares its views
// with k.
func (k *RsaPrivateKey) PublicKey() RsaPublicKey {
	return RsaPublicKey{
		Modulus:        k.Modulus,
		PublicExponent: k.PublicExponent,
	}
}

// Zeroize overwrites the private material of k with zeros: the private
// exponent, both primes, the CRT values and all additional prime infos. The
// modulus and the public exponent are not private and stay intact. Because
// the views alias the buffer the key was parsed from, the buffer is scrubbed
// as well.
func (k *RsaPrivateKey) Zeroize() {
	der.Zeroize(k.PrivateExponent.Bytes())
	der.Zeroize(k.Prime1.Bytes())
	der.Zeroize(k.Prime2.Bytes())
	der.Zeroize(k.Exponent1.Bytes())
	der.Zeroize(k.Exponent2.Bytes())
	der.Zeroize(k.Coefficient.Bytes())
	for _, info := range k.OtherPrimeInfos {
		der.Zeroize(info.Prime.Bytes())
		der.Zeroize(info.Exponent.Bytes())
		der.Zeroize(info.Coefficient.Bytes())
	}
}

// Tag returns der.TagSequence.
func (*RsaPrivateKey) Tag() der.Tag {
	return der.TagSequence
}

// ValueLen returns the number of contents octets of the encoded key.
func (k *RsaPrivateKey) ValueLen() (int, error) {
	return der.SequenceValueLen(k.fields()...)
}

// EncodeValue writes the fields of the key in order.
func (k *RsaPrivateKey) EncodeValue(e *der.Encoder) error {
	return der.EncodeSequenceValue(e, k.fields()...)
}

func (k *RsaPrivateKey) fields() []der.Encodable {
	fields := []der.Encodable{
		k.Version(),
		k.Modulus,
		k.PublicExponent,
		k.PrivateExponent,
		k.Prime1,
		k.Prime2,
		k.Exponent1,
		k.Exponent2,
		k.Coefficient,
	}
	if len(k.OtherPrimeInfos) > 0 {
		elems := make([]der.Encodable, len(k.OtherPrimeInfos))
		for i, info := range k.OtherPrimeInfos {
			elems[i] = info
		}
		fields = append(fields, der.Sequence(elems...))
	}
	return fields
}

// DecodeValue decodes the fields of the key. The integer views borrow from
// the decoder's input.
func (k *RsaPrivateKey) DecodeValue(d *der.Decoder, length int) error {
	var version Version
	if err := d.Decode(&version); err != nil {
		return err
	}
	for _, u := range []*der.UIntBytes{
		&k.Modulus, &k.PublicExponent, &k.PrivateExponent,
		&k.Prime1, &k.Prime2,
		&k.Exponent1, &k.Exponent2, &k.Coefficient,
	} {
		if err := d.Decode(u); err != nil {
			return err
		}
	}
	if d.More() {
		infos, err := der.SequenceOf[OtherPrimeInfo](d)
		if err != nil {
			return err
		}
		// RFC 8017 requires at least one entry when the field is present.
		if !version.IsMulti() || len(infos) == 0 {
			return ErrVersionMismatch
		}
		k.OtherPrimeInfos = infos
	} else if version.IsMulti() {
		return ErrVersionMismatch
	}
	return nil
}
