package emoji

// allVersions is the curated release registry, ascending by identifier.
// Thresholds follow the platform releases that shipped each emoji set.
// The introduced-emoji strings list base glyphs only; skin-tone variants
// are derived.
var allVersions = []Version{
	{
		Version: 12.0, IOS: 13.0, MacOS: 10.15, TVOS: 13.0, WatchOS: 6.0,
		Comment: "Emoji 12.0",
		chars:   "🥱🤎🤍🦮🦥🦦🦧🦨🦩🦬🧇🧆🧈🦪🧃🧉🪐🦽🦼🛺🪀🪁🪕🪔🪓🦺🥻🩱🩲🩳🩰🪒🪑🛕🦯🟠🟡🟢🟣🟤🟥🟧🟨🟩🟦🟪🟫",
	},
	{
		Version: 12.1, IOS: 13.2, MacOS: 10.15, TVOS: 13.2, WatchOS: 6.1,
		Comment: "Emoji 12.1",
		chars:   "🧑‍🦰🧑‍🦱🧑‍🦳🧑‍🦲🧑‍⚕️🧑‍🎓🧑‍🏫🧑‍⚖️🧑‍🌾🧑‍🍳🧑‍🔧🧑‍🏭🧑‍💼🧑‍🔬🧑‍💻🧑‍🎤🧑‍🎨🧑‍✈️🧑‍🚀🧑‍🚒🧑‍🦯🧑‍🦼🧑‍🦽",
	},
	{
		Version: 13.0, IOS: 14.2, MacOS: 11.0, TVOS: 14.2, WatchOS: 7.1,
		Comment: "Emoji 13.0",
		chars:   "🥲🥸🤌🫀🫁🥷🦤🦣🦫🐻‍❄️🪶🦭🪲🪳🪰🪱🪴🫐🫒🫑🫓🫔🫕🫖🧋🪨🪵🛖🛻🛼🪄🪅🪆🪡🪢🩴🪖🪗🪘🪙🪃🪚🪛🪝🪜🛗🪞🪟🪠🪤🪣🪥🪦🪧",
	},
	{
		Version: 13.1, IOS: 14.5, MacOS: 11.3, TVOS: 14.5, WatchOS: 7.4,
		Comment: "Emoji 13.1",
		chars:   "😮‍💨😵‍💫❤️‍🔥❤️‍🩹🧔‍♀️🧔‍♂️",
	},
	{
		Version: 14.0, IOS: 15.4, MacOS: 12.3, TVOS: 15.4, WatchOS: 8.5,
		Comment: "Emoji 14.0",
		chars:   "🫠🫢🫣🫡🫥🫤🥹🫱🫲🫳🫴🫰🫵🫶🫦🫅🫃🫄🧌🪸🪷🪹🪺🫘🫗🛝🛞🛟🪬🪩🪫🩼🩻🫧🪪🟰",
	},
	{
		Version: 15.0, IOS: 16.4, MacOS: 13.3, TVOS: 16.4, WatchOS: 9.4,
		Comment: "Emoji 15.0",
		chars:   "🫨🫸🫷🩷🩵🩶🫎🫏🪽🐦‍⬛🪿🪼🪻🫛🫚🪇🪈🪭🪮🛜🪯",
	},
	{
		Version: 15.1, IOS: 17.4, MacOS: 14.4, TVOS: 17.4, WatchOS: 10.4,
		Comment: "Emoji 15.1",
		chars:   "🙂‍↕️🙂‍↔️🐦‍🔥🍋‍🟩🍄‍🟫⛓️‍💥🚶‍➡️🏃‍➡️🧎‍➡️🧑‍🧑‍🧒🧑‍🧑‍🧒‍🧒🧑‍🧒🧑‍🧒‍🧒",
	},
	{
		Version: 16.0, IOS: 18.4, MacOS: 15.4, TVOS: 18.4, WatchOS: 11.4,
		Comment: "Emoji 16.0",
		chars:   "🫩🫆🪾🫜🫟🪉🪏🇨🇶",
	},
}

// AllVersions returns the curated release registry in ascending order,
// oldest first. The returned slice is shared static data; callers must not
// mutate it.
func AllVersions() []Version {
	return allVersions
}
