package pokeapi

// Stats are the six base stat slots of a species.
type Stats struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

// Sprites holds the image references for a species.
type Sprites struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
}

// Pokemon is the flattened creature descriptor the engine works with.
type Pokemon struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	BaseExperience int      `json:"base_experience"`
	Types          []string `json:"types"`
	Stats          Stats    `json:"stats"`
	Sprites        Sprites  `json:"sprites"`
	MoveNames      []string `json:"-"`
}

// Species carries species-level data not present on the Pokemon resource.
type Species struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CaptureRate int    `json:"capture_rate"`
}

// Move is a single move descriptor.
type Move struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Power       int    `json:"power"`
	Accuracy    int    `json:"accuracy"`
	PP          int    `json:"pp"`
	DamageClass string `json:"damage_class"`
}

// TypeRelations lists the offensive damage relations of one move type.
type TypeRelations struct {
	DoubleDamageTo []string `json:"double_damage_to"`
	HalfDamageTo   []string `json:"half_damage_to"`
	NoDamageTo     []string `json:"no_damage_to"`
}

// region --- wire formats ---

type namedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonWire struct {
	ID             int `json:"id"`
	Name           string
	BaseExperience int `json:"base_experience"`
	Types          []struct {
		Type namedRef `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int      `json:"base_stat"`
		Stat     namedRef `json:"stat"`
	} `json:"stats"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		FrontShiny   string `json:"front_shiny"`
	} `json:"sprites"`
	Moves []struct {
		Move namedRef `json:"move"`
	} `json:"moves"`
}

func (w pokemonWire) flatten() *Pokemon {
	p := &Pokemon{
		ID:             w.ID,
		Name:           w.Name,
		BaseExperience: w.BaseExperience,
		Sprites: Sprites{
			FrontDefault: w.Sprites.FrontDefault,
			FrontShiny:   w.Sprites.FrontShiny,
		},
	}
	for _, t := range w.Types {
		p.Types = append(p.Types, t.Type.Name)
	}
	for _, s := range w.Stats {
		switch s.Stat.Name {
		case "hp":
			p.Stats.HP = s.BaseStat
		case "attack":
			p.Stats.Attack = s.BaseStat
		case "defense":
			p.Stats.Defense = s.BaseStat
		case "special-attack":
			p.Stats.SpAttack = s.BaseStat
		case "special-defense":
			p.Stats.SpDefense = s.BaseStat
		case "speed":
			p.Stats.Speed = s.BaseStat
		}
	}
	for _, m := range w.Moves {
		p.MoveNames = append(p.MoveNames, m.Move.Name)
	}
	return p
}

type moveWire struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Power       int      `json:"power"`
	Accuracy    int      `json:"accuracy"`
	PP          int      `json:"pp"`
	Type        namedRef `json:"type"`
	DamageClass namedRef `json:"damage_class"`
}

func (w moveWire) flatten() *Move {
	return &Move{
		ID:          w.ID,
		Name:        w.Name,
		Type:        w.Type.Name,
		Power:       w.Power,
		Accuracy:    w.Accuracy,
		PP:          w.PP,
		DamageClass: w.DamageClass.Name,
	}
}

type typeWire struct {
	DamageRelations struct {
		DoubleDamageTo []namedRef `json:"double_damage_to"`
		HalfDamageTo   []namedRef `json:"half_damage_to"`
		NoDamageTo     []namedRef `json:"no_damage_to"`
	} `json:"damage_relations"`
}

func (w typeWire) flatten() *TypeRelations {
	rel := &TypeRelations{}
	for _, t := range w.DamageRelations.DoubleDamageTo {
		rel.DoubleDamageTo = append(rel.DoubleDamageTo, t.Name)
	}
	for _, t := range w.DamageRelations.HalfDamageTo {
		rel.HalfDamageTo = append(rel.HalfDamageTo, t.Name)
	}
	for _, t := range w.DamageRelations.NoDamageTo {
		rel.NoDamageTo = append(rel.NoDamageTo, t.Name)
	}
	return rel
}

// endregion
