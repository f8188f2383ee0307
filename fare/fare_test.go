package fare

import "testing"

func TestDistance_Direct(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		km   float64
	}{
		{name: "western corridor", a: "Churchgate", b: "Andheri", km: 19},
		{name: "central corridor", a: "CSMT", b: "Thane", km: 34},
		{name: "harbour corridor", a: "CSMT", b: "Panvel", km: 42},
		{name: "interchange span", a: "Dadar", b: "Thane", km: 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Distance(tt.a, tt.b)
			if !ok || got != tt.km {
				t.Errorf("Distance(%s, %s) = %v/%v, want %v", tt.a, tt.b, got, ok, tt.km)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	fwd, ok1 := Distance("Churchgate", "Borivali")
	rev, ok2 := Distance("Borivali", "Churchgate")
	if !ok1 || !ok2 || fwd != rev {
		t.Errorf("asymmetric lookup: %v vs %v", fwd, rev)
	}
}

func TestDistance_HubComposition(t *testing.T) {
	// Thane and Borivali have no direct entry; the distance composes
	// through Dadar, the first hub connected to both.
	got, ok := Distance("Thane", "Borivali")
	if !ok {
		t.Fatal("expected hub composition to connect Thane and Borivali")
	}
	want := 25.0 + 24.0
	if got != want {
		t.Errorf("Distance = %v, want %v", got, want)
	}
}

func TestDistance_SameStation(t *testing.T) {
	got, ok := Distance("Dadar", "dadar")
	if !ok || got != 0 {
		t.Errorf("same-station distance = %v/%v, want 0/true", got, ok)
	}
}

func TestDistance_Unknown(t *testing.T) {
	if _, ok := Distance("Churchgate", "Pune"); ok {
		t.Error("unknown station should not resolve")
	}
}

func TestForDistance_Slabs(t *testing.T) {
	tests := []struct {
		name string
		km   float64
		want Prices
	}{
		{name: "first slab", km: 3, want: Prices{Second: 5, First: 45, AC: 60}},
		{name: "boundary goes to upper slab", km: 5, want: Prices{Second: 5, First: 55, AC: 70}},
		{name: "mid slab", km: 34, want: Prices{Second: 20, First: 140, AC: 160}},
		{name: "long haul flat", km: 120, want: Prices{Second: 40, First: 280, AC: 360}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ForDistance(tt.km)
			if !ok || got != tt.want {
				t.Errorf("ForDistance(%v) = %+v/%v, want %+v", tt.km, got, ok, tt.want)
			}
		})
	}
	if _, ok := ForDistance(-1); ok {
		t.Error("negative distance should not price")
	}
}

func TestCalculate(t *testing.T) {
	f := Calculate("Dadar", "Thane")
	if f == nil {
		t.Fatal("Calculate returned nil for a known pair")
	}
	if f.DistanceKM != 25 {
		t.Errorf("distance = %v, want 25", f.DistanceKM)
	}
	// 25 km falls in the 25-30 slab.
	if f.Single != (Prices{Second: 15, First: 120, AC: 140}) {
		t.Errorf("single = %+v", f.Single)
	}
	if f.Monthly.Second != 15*15 || f.Monthly.First != 120*15 || f.Monthly.AC != 140*20 {
		t.Errorf("monthly = %+v", f.Monthly)
	}
}

func TestCalculate_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"Churchgate", "Virar"},
		{"Andheri", "Vashi"},
		{"Thane", "Panvel"},
	}
	for _, p := range pairs {
		fwd := Calculate(p[0], p[1])
		rev := Calculate(p[1], p[0])
		if fwd == nil || rev == nil {
			t.Fatalf("Calculate(%s, %s) failed", p[0], p[1])
		}
		if fwd.Single != rev.Single || fwd.DistanceKM != rev.DistanceKM {
			t.Errorf("fare not symmetric for %v: %+v vs %+v", p, fwd, rev)
		}
	}
}

func TestCalculate_Unconnectable(t *testing.T) {
	if f := Calculate("Churchgate", "Lonavala"); f != nil {
		t.Errorf("Calculate = %+v, want nil", f)
	}
}
