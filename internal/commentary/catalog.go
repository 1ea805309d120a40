package commentary

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// message keys
const (
	keyOvers   = "%d overs left"
	keyRunsWin = "%d runs to win"
	keyScores  = "%s scores %d runs"
	keyOut     = "%s - %d (%d balls) is out!"
	keyCard    = "%s - %d%s(%d balls)"
	keyWickets = "%d wickets"
	keyRuns    = "%d runs"
	keyBalls   = "%d balls left"
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	set := func(key string, msg catalog.Message) {
		if err := b.Set(language.English, key, msg); err != nil {
			panic(err)
		}
	}
	set(keyOvers, plural.Selectf(1, "%d", "=1", "%[1]d over left", "other", "%[1]d overs left"))
	set(keyRunsWin, plural.Selectf(1, "%d", "=1", "%[1]d run to win", "other", "%[1]d runs to win"))
	set(keyScores, plural.Selectf(2, "%d", "=1", "%[1]s scores %[2]d run", "other", "%[1]s scores %[2]d runs"))
	set(keyOut, plural.Selectf(3, "%d", "=1", "%[1]s - %[2]d (%[3]d ball) is out!", "other", "%[1]s - %[2]d (%[3]d balls) is out!"))
	set(keyCard, plural.Selectf(4, "%d", "=1", "%[1]s - %[2]d%[3]s(%[4]d ball)", "other", "%[1]s - %[2]d%[3]s(%[4]d balls)"))
	set(keyWickets, plural.Selectf(1, "%d", "=1", "%[1]d wicket", "other", "%[1]d wickets"))
	set(keyRuns, plural.Selectf(1, "%d", "=1", "%[1]d run", "other", "%[1]d runs"))
	set(keyBalls, plural.Selectf(1, "%d", "=1", "%[1]d ball left", "other", "%[1]d balls left"))
	return b
}

func newPrinter() *message.Printer {
	return message.NewPrinter(language.English, message.Catalog(newCatalog()))
}
