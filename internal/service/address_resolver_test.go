package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapLinkResolver_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		want    string
		wantErr error
	}{
		{name: "q param", link: "https://maps.google.com/?q=Apollo+Clinic,+MG+Road", want: "Apollo Clinic, MG Road"},
		{name: "query param", link: "https://www.google.com/maps/search/?api=1&query=City%20Hospital", want: "City Hospital"},
		{name: "place path", link: "https://www.google.com/maps/place/Heart+Care+Centre/@12.97,77.59,17z", want: "Heart Care Centre"},
		{name: "escaped place path", link: "https://www.google.com/maps/place/Sunrise%20Clinic/", want: "Sunrise Clinic"},
		{name: "no place", link: "https://maps.google.com/@12.97,77.59,17z", wantErr: ErrAddressNotFound},
		{name: "not a url", link: "near the station", wantErr: ErrAddressNotFound},
		{name: "empty", link: "", wantErr: ErrAddressNotFound},
	}

	r := NewMapLinkResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(context.Background(), tt.link)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapLinkResolver_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMapLinkResolver().Resolve(ctx, "https://maps.google.com/?q=x")
	assert.ErrorIs(t, err, context.Canceled)
}
