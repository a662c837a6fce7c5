package board

import "testing"

func TestPropertyRentFormula(t *testing.T) {
	tests := []struct {
		name   string
		price  int
		houses int
		hotel  bool
		want   int
	}{
		{"bare", 200, 0, false, 20},
		{"one house", 200, 1, false, 50},
		{"four houses", 200, 4, false, 140},
		{"hotel on four houses", 200, 4, true, 200},
		{"hotel on one house", 100, 1, true, 55},
		{"truncates", 60, 1, false, 15}, // 6 + 9
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProperty(1, "test", tt.price, 50, 250)
			p.SetOwner(0)
			p.SetBuildings(tt.houses, tt.hotel)
			if got := p.Rent(); got != tt.want {
				t.Errorf("Rent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRentZeroWhileUnowned(t *testing.T) {
	p := NewProperty(1, "street", 200, 50, 250)
	p.SetBuildings(4, true)
	if got := p.Rent(); got != 0 {
		t.Errorf("unowned property rent = %d, want 0", got)
	}
	c := NewCompany(5, "rail", 200, 25)
	if got := c.Rent(); got != 0 {
		t.Errorf("unowned company rent = %d, want 0", got)
	}
	c.SetOwner(1)
	if got := c.Rent(); got != 25 {
		t.Errorf("owned company rent = %d, want 25", got)
	}
}

func TestPropertyBuildOrder(t *testing.T) {
	p := NewProperty(1, "street", 200, 50, 250)
	p.SetOwner(0)

	if err := p.AddHotel(); err != ErrNoHouses {
		t.Errorf("AddHotel() with no houses = %v, want ErrNoHouses", err)
	}
	for i := 0; i < 4; i++ {
		if err := p.AddHouse(); err != nil {
			t.Fatalf("AddHouse() #%d: %v", i+1, err)
		}
	}
	if err := p.AddHouse(); err != ErrHousesMaxed {
		t.Errorf("fifth AddHouse() = %v, want ErrHousesMaxed", err)
	}
	if err := p.AddHotel(); err != nil {
		t.Fatalf("AddHotel(): %v", err)
	}
	if p.Houses() != 4 {
		t.Errorf("hotel cleared houses: %d", p.Houses())
	}
	if err := p.AddHotel(); err != ErrHasHotel {
		t.Errorf("second AddHotel() = %v, want ErrHasHotel", err)
	}
	if err := p.AddHouse(); err != ErrHasHotel {
		t.Errorf("AddHouse() after hotel = %v, want ErrHasHotel", err)
	}
}

func TestAggregateValueAndReset(t *testing.T) {
	p := NewProperty(1, "street", 200, 50, 250)
	p.SetOwner(3)
	p.SetBuildings(3, true)

	if got := p.AggregateValue(); got != 200+3*50+250 {
		t.Errorf("AggregateValue() = %d, want %d", got, 200+3*50+250)
	}

	p.Reset()
	if p.Owned() || p.Houses() != 0 || p.Hotel() {
		t.Error("Reset() left state behind")
	}
	if got := p.AggregateValue(); got != 200 {
		t.Errorf("AggregateValue() after Reset = %d, want 200", got)
	}
}
