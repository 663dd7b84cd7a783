package usecases

import "testing"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestValidateMover(t *testing.T) {
	cases := []struct {
		name      string
		velocidad *int
		direccion string
		wantErr   bool
	}{
		{"valid forward", intPtr(100), DireccionAdelante, false},
		{"valid zero speed", intPtr(0), DireccionAtras, false},
		{"valid max speed", intPtr(255), DireccionIzquierda, false},
		{"missing velocidad", nil, DireccionAdelante, true},
		{"missing direccion", intPtr(100), "", true},
		{"speed too high", intPtr(256), DireccionAdelante, true},
		{"speed negative", intPtr(-1), DireccionAdelante, true},
		{"invalid direction", intPtr(100), "diagonal", true},
		{"uppercase direction rejected", intPtr(100), "ADELANTE", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateMover(tc.velocidad, tc.direccion)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateMover(%v, %q) error = %v, wantErr %v", tc.velocidad, tc.direccion, err, tc.wantErr)
			}
			if err != nil && !IsValidation(err) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestValidateRotar(t *testing.T) {
	cases := []struct {
		name    string
		angulo  *float64
		wantErr bool
	}{
		{"valid positive", floatPtr(90), false},
		{"valid negative", floatPtr(-90), false},
		{"full turn", floatPtr(360), false},
		{"full turn negative", floatPtr(-360), false},
		{"zero", floatPtr(0), false},
		{"missing", nil, true},
		{"too far", floatPtr(361), true},
		{"too far negative", floatPtr(-361), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRotar(tc.angulo)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateRotar(%v) error = %v, wantErr %v", tc.angulo, err, tc.wantErr)
			}
		})
	}
}

func TestValidateBuscar(t *testing.T) {
	if err := ValidateBuscar(""); err == nil {
		t.Fatal("expected error for empty objeto")
	}
	if err := ValidateBuscar("pelota"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateAccion(t *testing.T) {
	for _, accion := range []string{"encender", "apagar"} {
		if err := ValidateAccion(accion); err != nil {
			t.Fatalf("ValidateAccion(%q) unexpected error: %v", accion, err)
		}
	}
	for _, accion := range []string{"", "reiniciar", "ENCENDER", "parar"} {
		if err := ValidateAccion(accion); err == nil {
			t.Fatalf("ValidateAccion(%q) expected error", accion)
		}
	}
}
