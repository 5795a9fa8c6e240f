package goSign_test

import (
	"errors"
	"fmt"
	"time"

	goSign "github.com/MrEthical07/goSign"
)

func ExampleSigner() {
	signer, err := goSign.New().WithSecret([]byte("hello")).Build()
	if err != nil {
		panic(err)
	}

	signed := signer.Sign([]byte("this is a test"))
	fmt.Println(signed)

	payload, err := signer.Unsign(signed)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(payload))
	// Output:
	// dGhpcyBpcyBhIHRlc3Q.a1Czhr07XKAQJSLzFWukOQ7EFTU
	// this is a test
}

func ExampleSigner_keyRotation() {
	// Sign under the old secret, then rotate: the new secret is prepended
	// and the old one stays accepted until removed from the list.
	oldSigner, _ := goSign.New().WithSecret([]byte("old secret")).Build()
	issued := oldSigner.Sign([]byte("still valid"))

	rotated, _ := goSign.New().
		WithSecrets([]byte("new secret"), []byte("old secret")).
		Build()

	payload, err := rotated.Unsign(issued)
	fmt.Println(string(payload), err)
	// Output:
	// still valid <nil>
}

func ExampleTimestampSigner() {
	signer, err := goSign.New().WithSecret([]byte("hello")).Build()
	if err != nil {
		panic(err)
	}
	ts := signer.Timestamped()

	signed := ts.Sign([]byte("session token"))

	payload, err := ts.Unsign(signed, time.Hour)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(payload))
	// Output:
	// session token
}

func ExampleExpiredError() {
	signer, _ := goSign.New().WithSecret([]byte("hello")).Build()
	ts := signer.Timestamped()

	signed := ts.SignAt([]byte("session token"), time.Now().Add(-2*time.Hour))
	_, err := ts.Unsign(signed, time.Hour)

	var expired *goSign.ExpiredError
	if errors.As(err, &expired) {
		// An expired token is authentic: re-issue instead of rejecting.
		fmt.Println("expired but authentic, max age was", expired.MaxAge)
	}
	// Output:
	// expired but authentic, max age was 1h0m0s
}

func ExampleSerializer() {
	signer, _ := goSign.New().WithSecret([]byte("hello")).Build()
	sz := goSign.NewSerializer(signer, nil)

	signed, _ := sz.Sign(map[string]string{"uid": "alice"})

	var session map[string]string
	if err := sz.Unsign(signed, &session); err != nil {
		panic(err)
	}
	fmt.Println(session["uid"])
	// Output:
	// alice
}
