package wifiqr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/qrnetctl/internal/adapter/driven/wifiqr"
	"github.com/ericfisherdev/qrnetctl/internal/domain/model"
)

func mustCredential(t *testing.T, ssid string, sec model.Security, password string, hidden bool) *model.WifiCredential {
	t.Helper()
	c, err := model.NewWifiCredential(ssid,
		model.WithSecurity(sec),
		model.WithPassword(password),
		model.WithHidden(hidden),
	)
	require.NoError(t, err)
	return &c
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *model.WifiCredential
	}{
		{
			name:  "url is not a wifi code",
			input: `QR-Code:http://example.com`,
			want:  nil,
		},
		{
			name:  "wpa",
			input: `QR-Code:WIFI:T:WPA;S:mynetwork;P:mypass;;`,
			want:  mustCredential(t, "mynetwork", model.SecurityWPA, "mypass", false),
		},
		{
			name:  "wep hidden without value",
			input: `QR-Code:WIFI:T:WEP;S:mynetwork;P:mypass;H;`,
			want:  mustCredential(t, "mynetwork", model.SecurityWEP, "mypass", true),
		},
		{
			name:  "empty type and password",
			input: `QR-Code:WIFI:T:;S:mynetwork;P:;;`,
			want:  mustCredential(t, "mynetwork", model.SecurityNone, "", false),
		},
		{
			name:  "escaped semicolons",
			input: `QR-Code:WIFI:T:WEP;S:my\;net\;work;P:my\;pass\;word;;`,
			want:  mustCredential(t, "my;net;work", model.SecurityWEP, "my;pass;word", false),
		},
		{
			name:  "escaped colons",
			input: `QR-Code:WIFI:T:WEP;S:my\:net\:work;P:my\:pass\:word;;`,
			want:  mustCredential(t, "my:net:work", model.SecurityWEP, "my:pass:word", false),
		},
		{
			name:  "escaped dots",
			input: `QR-Code:WIFI:T:WEP;S:my\.net\.work;P:my\.pass\.word;;`,
			want:  mustCredential(t, "my.net.work", model.SecurityWEP, "my.pass.word", false),
		},
		{
			name:  "escaped backslashes",
			input: `QR-Code:WIFI:T:WEP;S:my\\net\\work;P:my\\pass\\;;`,
			want:  mustCredential(t, `my\net\work`, model.SecurityWEP, `my\pass\`, false),
		},
		{
			name:  "escaped backslash followed by escaped semicolon",
			input: `QR-Code:WIFI:T:WEP;S:my\\network;P:my\\pass\\\;;;`,
			want:  mustCredential(t, `my\network`, model.SecurityWEP, `my\pass\;`, false),
		},
		{
			name:  "without scanner prefix",
			input: `WIFI:T:WPA;S:mynetwork;P:mypass;;`,
			want:  mustCredential(t, "mynetwork", model.SecurityWPA, "mypass", false),
		},
		{
			name:  "trailing newline from scanner output",
			input: "QR-Code:WIFI:T:WPA;S:mynetwork;P:mypass;;\n",
			want:  mustCredential(t, "mynetwork", model.SecurityWPA, "mypass", false),
		},
		{
			name:  "fields in any order",
			input: `WIFI:P:mypass;H:true;S:mynetwork;T:WPA;;`,
			want:  mustCredential(t, "mynetwork", model.SecurityWPA, "mypass", true),
		},
		{
			name:  "optional fields missing",
			input: `WIFI:S:mynetwork;;`,
			want:  mustCredential(t, "mynetwork", model.SecurityNone, "", false),
		},
		{
			name:  "hidden with false value still sets hidden",
			input: `WIFI:S:mynetwork;H:false;;`,
			want:  mustCredential(t, "mynetwork", model.SecurityNone, "", true),
		},
		{
			name:  "unknown keys ignored",
			input: `WIFI:T:WPA;R:1;S:mynetwork;X:whatever\;else;P:mypass;;`,
			want:  mustCredential(t, "mynetwork", model.SecurityWPA, "mypass", false),
		},
		{
			name:  "lowercase keys are unknown",
			input: `WIFI:S:mynetwork;p:mypass;;`,
			want:  mustCredential(t, "mynetwork", model.SecurityNone, "", false),
		},
		{
			name:  "repeated key keeps last value",
			input: `WIFI:S:first;S:second;;`,
			want:  mustCredential(t, "second", model.SecurityNone, "", false),
		},
		{
			name:  "record without terminator",
			input: `WIFI:T:WPA;S:mynetwork;P:mypass`,
			want:  mustCredential(t, "mynetwork", model.SecurityWPA, "mypass", false),
		},
		{
			name:  "fields after terminator ignored",
			input: `WIFI:S:mynetwork;;P:later;`,
			want:  mustCredential(t, "mynetwork", model.SecurityNone, "", false),
		},
		{
			name:  "colon inside value needs no escape",
			input: `WIFI:T:WPA;S:mynetwork;P:a:b;;`,
			want:  mustCredential(t, "mynetwork", model.SecurityWPA, "a:b", false),
		},
		{
			name:  "unrecognized escape kept literally",
			input: `WIFI:T:WPA;S:my\network;P:\"quoted\";;`,
			want:  mustCredential(t, `my\network`, model.SecurityWPA, `\"quoted\"`, false),
		},
		{
			name:  "trailing backslash kept literally",
			input: `WIFI:T:WPA;S:mynetwork;P:pass\`,
			want:  mustCredential(t, "mynetwork", model.SecurityWPA, `pass\`, false),
		},
		{
			name:  "nopass type",
			input: `WIFI:T:nopass;S:mynetwork;;`,
			want:  mustCredential(t, "mynetwork", model.SecurityNone, "", false),
		},
		{
			name:  "wpa2 maps to wpa",
			input: `WIFI:T:WPA2;S:mynetwork;P:mypass;;`,
			want:  mustCredential(t, "mynetwork", model.SecurityWPA, "mypass", false),
		},
		{
			name:  "lowercase scheme and type",
			input: `wifi:T:wpa;S:mynetwork;P:mypass;;`,
			want:  mustCredential(t, "mynetwork", model.SecurityWPA, "mypass", false),
		},
		{
			name:  "utf-8 ssid",
			input: `WIFI:T:WPA;S:café\;wifi;P:mot de passe;;`,
			want:  mustCredential(t, "café;wifi", model.SecurityWPA, "mot de passe", false),
		},
		{
			name:  "empty payload",
			input: ``,
			want:  nil,
		},
		{
			name:  "scheme not at start",
			input: `QR-Code:see WIFI:S:mynetwork;;`,
			want:  nil,
		},
	}

	p := wifiqr.NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse([]byte(tt.input))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "missing ssid",
			input:   `QR-Code:WIFI:T:WPA;P:mypass;;`,
			wantErr: model.ErrMissingSSID,
		},
		{
			name:    "empty ssid",
			input:   `QR-Code:WIFI:T:WPA;S:;P:mypass;;`,
			wantErr: model.ErrMissingSSID,
		},
		{
			name:    "ssid key without colon",
			input:   `WIFI:S;P:mypass;;`,
			wantErr: model.ErrMissingSSID,
		},
		{
			name:    "empty record",
			input:   `WIFI:;`,
			wantErr: model.ErrMissingSSID,
		},
		{
			name:    "unknown security type",
			input:   `WIFI:T:WPA2-EAP;S:mynetwork;P:mypass;;`,
			wantErr: model.ErrUnsupportedSecurity,
		},
	}

	p := wifiqr.NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse([]byte(tt.input))

			assert.Nil(t, got)
			require.ErrorIs(t, err, model.ErrInvalidPayload)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
