// Package catalog holds the static game content: the playable heroes and
// the coin shop inventory.
package catalog

// Hero is a playable character. Story and Look feed the generation
// prompts; the rest is presentation data for clients.
type Hero struct {
	Name      string   `json:"name"`
	Story     string   `json:"story"`
	Look      string   `json:"look"`
	Emoji     string   `json:"emoji"`
	Color     string   `json:"color"`
	Particles []string `json:"particles"`
	Action    string   `json:"action"`
}

// Item is a purchasable shop item.
type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Price int    `json:"price"`
}

var heroes = []Hero{
	{
		Name:      "Wizard",
		Story:     "uses magic potions and spellbooks",
		Look:      "an old wizard with a long beard, pointy hat, purple robe, and a glowing staff",
		Emoji:     "🧙‍♂️",
		Color:     "#7B1FA2",
		Particles: []string{"✨", "⭐", "🔮", "💫", "🌟"},
		Action:    "casting a spell",
	},
	{
		Name:      "Goku",
		Story:     "uses Super Saiyan power, Kamehameha blasts, and martial arts",
		Look:      "an anime martial arts fighter with spiky golden hair, orange gi outfit, powering up with energy aura",
		Emoji:     "💥",
		Color:     "#FF6F00",
		Particles: []string{"⚡", "💥", "🔥", "💪", "✊"},
		Action:    "powering up",
	},
	{
		Name:      "Ninja",
		Story:     "uses stealth, shadow clones, and throwing stars",
		Look:      "a masked ninja in black outfit with a headband, holding throwing stars and a katana sword",
		Emoji:     "🥷",
		Color:     "#37474F",
		Particles: []string{"💨", "🌀", "⚔️", "🌙", "💫"},
		Action:    "throwing stars",
	},
	{
		Name:      "Princess",
		Story:     "uses royal magic, enchanted castles, and fairy tale power",
		Look:      "a brave princess in a sparkling pink and gold gown with a tiara, holding a magical scepter",
		Emoji:     "👑",
		Color:     "#E91E63",
		Particles: []string{"👑", "💎", "🦋", "🌸", "✨"},
		Action:    "casting royal magic",
	},
	{
		Name:      "Hulk",
		Story:     "uses incredible super strength, smashing, and unstoppable power",
		Look:      "a massive green muscular superhero with torn purple shorts, clenching his fists and looking powerful",
		Emoji:     "💪",
		Color:     "#2E7D32",
		Particles: []string{"💥", "💪", "🪨", "⚡", "🔥"},
		Action:    "smashing",
	},
	{
		Name:      "Spider-Man",
		Story:     "uses web-slinging, wall-crawling, and spider senses",
		Look:      "a superhero in a red and blue spider suit with web patterns, shooting webs from his wrists",
		Emoji:     "🕷️",
		Color:     "#D32F2F",
		Particles: []string{"🕸️", "🕷️", "💫", "⚡", "🌀"},
		Action:    "slinging webs",
	},
}

var items = []Item{
	{ID: "fire_sword", Name: "Fire Sword", Emoji: "🗡️🔥", Price: 100},
	{ID: "ice_shield", Name: "Ice Shield", Emoji: "🛡️❄️", Price: 100},
	{ID: "magic_wand", Name: "Magic Wand", Emoji: "🪄✨", Price: 150},
	{ID: "dino_saddle", Name: "Dino Saddle", Emoji: "🦖🪑", Price: 200},
	{ID: "missile_launcher", Name: "Missile Launcher", Emoji: "🚀💣", Price: 250},
	{ID: "lightning_gauntlets", Name: "Lightning Gauntlets", Emoji: "🧤⚡", Price: 300},
}

// Heroes returns all playable heroes in display order.
func Heroes() []Hero {
	out := make([]Hero, len(heroes))
	copy(out, heroes)
	return out
}

// HeroByName looks up a hero by its exact name.
func HeroByName(name string) (Hero, bool) {
	for _, h := range heroes {
		if h.Name == name {
			return h, true
		}
	}
	return Hero{}, false
}

// Items returns the shop inventory in display order.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ItemByID looks up a shop item by id.
func ItemByID(id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
