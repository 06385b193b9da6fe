package bootstring

// punycodeVectors pairs labels with their Punycode encoding. The first group
// comes from RFC 3492 section 7.1.
var punycodeVectors = []struct {
	name    string
	unicode string
	ace     string
}{
	{"arabic (egyptian)", "ليهمابتكلموشعربي؟", "egbpdaj6bu4bxfgehfvwxn"},
	{"chinese (simplified)", "他们为什么不说中文", "ihqwcrb4cv8a8dqg056pqjye"},
	{"chinese (traditional)", "他們爲什麽不說中文", "ihqwctvzc91f659drss3x8bo0yb"},
	{"czech", "Pročprostěnemluvíčesky", "Proprostnemluvesky-uyb24dma41a"},
	{"hebrew", "למההםפשוטלאמדבריםעברית", "4dbcagdahymbxekheh6e0a7fei0b"},
	{"japanese", "なぜみんな日本語を話してくれないのか", "n8jok5ay5dzabd5bym9f0cm5685rrjetr6pdxa"},
	{"russian", "почемужеонинеговорятпорусски", "b1abfaaepdrnnbgefbadotcwatmq2g4l"},
	{"spanish", "PorquénopuedensimplementehablarenEspañol", "PorqunopuedensimplementehablarenEspaol-fmd56a"},
	{"vietnamese", "TạisaohọkhôngthểchỉnóitiếngViệt", "TisaohkhngthchnitingVit-kjcr8268qyxafd2f1b9g"},
	{"3nen b gumi", "3年B組金八先生", "3B-ww4c5e180e575a65lsy2b"},
	{"amuro namie", "安室奈美恵-with-SUPER-MONKEYS", "-with-SUPER-MONKEYS-pc58ag80a8qai00g7n9n"},
	{"hello another way", "Hello-Another-Way-それぞれの場所", "Hello-Another-Way--fc4qua05auwb3674vfr0b"},
	{"hitotsu yane", "ひとつ屋根の下2", "2-u9tlzr9756bt3uc0v"},
	{"maji de koi", "MajiでKoiする5秒前", "MajiKoi5-783gue6qz075azm5e"},
	{"pafii de runba", "パフィーdeルンバ", "de-jg4avhby1noc0d"},
	{"sono speed", "そのスピードで", "d9juau41awczczp"},

	{"munchen", "münchen", "mnchen-3ya"},
	{"muller", "Müller", "Mller-kva"},
	{"single u umlaut", "ü", "tda"},
	{"snowman", "☃", "n3h"},
	{"emoji", "\U0001F600", "e28h"},
	{"astral mixed", "a\U0001F600b\U0001D11Ec", "abc-pn20b295h"},
	{"repeated", "ababüüüabab", "abababab-95aaa"},
}
