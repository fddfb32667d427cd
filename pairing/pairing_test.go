package pairing

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func TestScalar(t *testing.T) {
	t.Run("AddSub", func(t *testing.T) {
		a, _ := RandomScalar(rand.Reader)
		b, _ := RandomScalar(rand.Reader)

		sum := NewScalar().Add(a, b)
		diff := NewScalar().Sub(sum, b)

		if !diff.Equal(a) {
			t.Error("(a+b)-b != a")
		}
	})

	t.Run("MulDiv", func(t *testing.T) {
		a, _ := RandomScalar(rand.Reader)
		b, _ := RandomScalar(rand.Reader)

		product := NewScalar().Mul(a, b)
		quotient, err := NewScalar().Div(product, b)
		if err != nil {
			t.Fatal(err)
		}
		if !quotient.Equal(a) {
			t.Error("(a*b)/b != a")
		}
	})

	t.Run("MulInvert", func(t *testing.T) {
		a, _ := RandomScalar(rand.Reader)
		aInv, err := NewScalar().Invert(a)
		if err != nil {
			t.Fatal(err)
		}
		if !NewScalar().Mul(a, aInv).Equal(ScalarFromUint64(1)) {
			t.Error("a*a^-1 != 1")
		}
	})

	t.Run("DivideByZeroFails", func(t *testing.T) {
		a, _ := RandomScalar(rand.Reader)
		if _, err := NewScalar().Div(a, NewScalar()); !errors.Is(err, ErrZeroDivisor) {
			t.Errorf("expected ErrZeroDivisor, got %v", err)
		}
		if _, err := NewScalar().Invert(NewScalar()); !errors.Is(err, ErrZeroDivisor) {
			t.Errorf("expected ErrZeroDivisor, got %v", err)
		}
	})

	t.Run("Negate", func(t *testing.T) {
		a, _ := RandomScalar(rand.Reader)
		negA := NewScalar().Negate(a)

		if !NewScalar().Add(a, negA).IsZero() {
			t.Error("a + (-a) != 0")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		a, _ := RandomScalar(rand.Reader)

		encoded := a.Bytes()
		if len(encoded) != ScalarSize {
			t.Fatalf("scalar encodes to %d bytes, want %d", len(encoded), ScalarSize)
		}
		restored, err := NewScalar().SetBytes(encoded)
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(a) {
			t.Error("scalar bytes roundtrip failed")
		}
	})

	t.Run("SetBytesWrongLength", func(t *testing.T) {
		a, _ := RandomScalar(rand.Reader)
		original := NewScalar().Set(a)

		for _, n := range []int{0, 1, ScalarSize - 1, ScalarSize + 1, 64} {
			if _, err := a.SetBytes(make([]byte, n)); !errors.Is(err, ErrInvalidLength) {
				t.Errorf("len %d: expected ErrInvalidLength, got %v", n, err)
			}
		}
		if !a.Equal(original) {
			t.Error("failed decode modified the receiver")
		}
	})

	t.Run("SetBytesNonCanonical", func(t *testing.T) {
		// r itself is not a canonical encoding
		order := Default().Order().FillBytes(make([]byte, ScalarSize))
		if _, err := NewScalar().SetBytes(order); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("expected ErrInvalidEncoding, got %v", err)
		}
	})

	t.Run("Zeroize", func(t *testing.T) {
		a, _ := RandomScalar(rand.Reader)
		a.Zeroize()
		if !a.IsZero() {
			t.Error("zeroized scalar should be zero")
		}
		var nilScalar *Scalar
		nilScalar.Zeroize()
	})

	t.Run("RandomIsNonZero", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			a, err := RandomScalar(rand.Reader)
			if err != nil {
				t.Fatal(err)
			}
			if a.IsZero() {
				t.Fatal("random scalar is zero")
			}
		}
	})

	t.Run("RandomShortReader", func(t *testing.T) {
		if _, err := RandomScalar(bytes.NewReader(make([]byte, 8))); err == nil {
			t.Error("expected error from short reader")
		}
	})
}

func TestPoints(t *testing.T) {
	t.Run("G1AddScalarMult", func(t *testing.T) {
		a, _ := RandomScalar(rand.Reader)
		b, _ := RandomScalar(rand.Reader)
		g := G1Generator()

		lhs := NewG1().ScalarMult(NewScalar().Add(a, b), g)
		rhs := NewG1().Add(NewG1().ScalarMult(a, g), NewG1().ScalarMult(b, g))
		if !lhs.Equal(rhs) {
			t.Error("(a+b)G != aG + bG")
		}
	})

	t.Run("G2AddScalarMult", func(t *testing.T) {
		a, _ := RandomScalar(rand.Reader)
		b, _ := RandomScalar(rand.Reader)
		g := G2Generator()

		lhs := NewG2().ScalarMult(NewScalar().Add(a, b), g)
		rhs := NewG2().Add(NewG2().ScalarMult(a, g), NewG2().ScalarMult(b, g))
		if !lhs.Equal(rhs) {
			t.Error("(a+b)G != aG + bG")
		}
	})

	t.Run("Neg", func(t *testing.T) {
		s, _ := RandomScalar(rand.Reader)
		p := NewG1().ScalarMult(s, G1Generator())
		if !NewG1().Add(p, NewG1().Neg(p)).IsIdentity() {
			t.Error("P + (-P) != identity in G1")
		}
		q := NewG2().ScalarMult(s, G2Generator())
		if !NewG2().Add(q, NewG2().Neg(q)).IsIdentity() {
			t.Error("Q + (-Q) != identity in G2")
		}
	})

	t.Run("IsIdentity", func(t *testing.T) {
		if !NewG1().IsIdentity() || !NewG2().IsIdentity() {
			t.Error("new point should be identity")
		}
		if G1Generator().IsIdentity() || G2Generator().IsIdentity() {
			t.Error("generator should not be identity")
		}
	})

	t.Run("G1Roundtrip", func(t *testing.T) {
		p, err := HashToG1([]byte("roundtrip"), []byte(DefaultDST))
		if err != nil {
			t.Fatal(err)
		}

		compressed := p.Bytes()
		if len(compressed) != G1CompressedSize {
			t.Fatalf("compressed G1 is %d bytes, want %d", len(compressed), G1CompressedSize)
		}
		q, err := NewG1().SetBytes(compressed)
		if err != nil {
			t.Fatal(err)
		}
		if !q.Equal(p) {
			t.Error("compressed G1 roundtrip failed")
		}

		raw := p.RawBytes()
		if len(raw) != G1UncompressedSize {
			t.Fatalf("uncompressed G1 is %d bytes, want %d", len(raw), G1UncompressedSize)
		}
		q, err = NewG1().SetRawBytes(raw)
		if err != nil {
			t.Fatal(err)
		}
		if !q.Equal(p) {
			t.Error("uncompressed G1 roundtrip failed")
		}
	})

	t.Run("G2Roundtrip", func(t *testing.T) {
		p, err := RandomG2(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}

		q, err := NewG2().SetBytes(p.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !q.Equal(p) {
			t.Error("compressed G2 roundtrip failed")
		}

		q, err = NewG2().SetRawBytes(p.RawBytes())
		if err != nil {
			t.Fatal(err)
		}
		if !q.Equal(p) {
			t.Error("uncompressed G2 roundtrip failed")
		}
	})

	t.Run("WrongLengthFails", func(t *testing.T) {
		g1 := G1Generator()
		g2 := G2Generator()

		if _, err := NewG1().SetBytes(g1.RawBytes()); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("G1 SetBytes with uncompressed input: got %v", err)
		}
		if _, err := NewG1().SetRawBytes(g1.Bytes()); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("G1 SetRawBytes with compressed input: got %v", err)
		}
		if _, err := NewG2().SetBytes(g2.Bytes()[1:]); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("G2 SetBytes with short input: got %v", err)
		}
		if _, err := NewG2().SetRawBytes(nil); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("G2 SetRawBytes with nil input: got %v", err)
		}
	})

	t.Run("FailedDecodeKeepsReceiver", func(t *testing.T) {
		p := G1Generator()
		if _, err := p.SetBytes([]byte{1, 2, 3}); err == nil {
			t.Fatal("expected error")
		}
		if !p.Equal(G1Generator()) {
			t.Error("failed decode modified the receiver")
		}
	})

	t.Run("GarbageFails", func(t *testing.T) {
		garbage := bytes.Repeat([]byte{0xff}, G1CompressedSize)
		if _, err := NewG1().SetBytes(garbage); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("expected ErrInvalidEncoding, got %v", err)
		}
		garbage = bytes.Repeat([]byte{0xff}, G2CompressedSize)
		if _, err := NewG2().SetBytes(garbage); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("expected ErrInvalidEncoding, got %v", err)
		}
	})
}

func TestHashToG1(t *testing.T) {
	dst := []byte(DefaultDST)

	a, err := HashToG1([]byte("message"), dst)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := HashToG1([]byte("message"), dst)
	if !a.Equal(b) {
		t.Error("hash to G1 is not deterministic")
	}

	c, _ := HashToG1([]byte("other message"), dst)
	if a.Equal(c) {
		t.Error("different messages hashed to the same point")
	}

	d, _ := HashToG1([]byte("message"), []byte("ANOTHER-DST"))
	if a.Equal(d) {
		t.Error("different tags hashed to the same point")
	}
}

func TestBilinearity(t *testing.T) {
	x, _ := RandomScalar(rand.Reader)
	y, _ := RandomScalar(rand.Reader)
	a, _ := HashToG1([]byte("bilinear"), []byte(DefaultDST))
	b, _ := RandomG2(rand.Reader)

	// e(a^x, b^y) == e(a^(xy), b)
	lhs, err := Pair(NewG1().ScalarMult(x, a), NewG2().ScalarMult(y, b))
	if err != nil {
		t.Fatal(err)
	}
	rhs, err := Pair(NewG1().ScalarMult(NewScalar().Mul(x, y), a), b)
	if err != nil {
		t.Fatal(err)
	}
	if !lhs.Equal(rhs) {
		t.Error("e(a^x, b^y) != e(a^xy, b)")
	}

	ok, err := PairingCheck(
		[]*G1{NewG1().ScalarMult(x, a), NewG1().Neg(a)},
		[]*G2{b, NewG2().ScalarMult(x, b)},
	)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("e(a^x, b) * e(-a, b^x) != 1")
	}

	if _, err := PairingCheck([]*G1{a}, nil); err == nil {
		t.Error("expected error for mismatched slices")
	}
}

func TestParams(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same instance")
	}

	p := Default()
	if p.Name() != CurveName {
		t.Errorf("unexpected curve name %q", p.Name())
	}
	if p.Order().BitLen() != 255 {
		t.Errorf("unexpected order size %d", p.Order().BitLen())
	}
	if p.Modulus().BitLen() != 381 {
		t.Errorf("unexpected modulus size %d", p.Modulus().BitLen())
	}

	dst := p.DST()
	dst[0] ^= 0xff
	if bytes.Equal(dst, p.DST()) {
		t.Error("DST should return a copy")
	}

	if _, err := NewParams(nil); err == nil {
		t.Error("expected error for empty tag")
	}
	if _, err := NewParams(make([]byte, 256)); err == nil {
		t.Error("expected error for oversized tag")
	}

	custom, err := NewParams([]byte("custom"))
	if err != nil {
		t.Fatal(err)
	}
	h1, _ := custom.HashToG1([]byte("m"))
	h2, _ := p.HashToG1([]byte("m"))
	if h1.Equal(h2) {
		t.Error("custom tag should change the digest")
	}
}
