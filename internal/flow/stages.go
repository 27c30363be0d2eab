package flow

import (
	"context"
	"fmt"

	"github.com/v0xg/trendscout/internal/geocode"
)

// Bootstrap resolves the driver directory, starts a session and loads the
// reference page.
func Bootstrap(ctx context.Context, deps Deps, referenceURL string) (Session, error) {
	con := deps.Console

	dir, err := deps.DriverDir()
	if err != nil {
		return nil, err
	}
	con.Printf("Web Driver Path : %s", dir)

	sess, err := deps.Launch(ctx, dir)
	if err != nil {
		return nil, err
	}
	if err := sess.Navigate(referenceURL); err != nil {
		sess.Close()
		return nil, err
	}
	con.Printf("Driver Object : %s", sess)
	return sess, nil
}

// ReferenceScrape reads the alpha-2 link texts from the loaded reference page
// and keeps the two-character ones. A count other than expected is reported
// but does not stop the run.
func ReferenceScrape(sess Session, con Console, expected int) ([]string, error) {
	con.Print("Parsing DOM for target elements please wait...")
	texts, err := sess.TextsX(AlphaTwoLinks)
	if err != nil {
		return nil, err
	}

	con.Print("Parsing targeted elements please wait...")
	codes := geocode.Filter(texts)

	if geocode.CountMismatch(codes, expected) {
		con.Printf("Warning, Something went wrong when parsing geo codes. We should have %d total and we have %d", expected, len(codes))
	}
	con.Printf("(%d / %d) alpha-2 geo codes have been parsed.", len(codes), expected)
	return codes, nil
}

// SelectGeoCode prompts for a code and resolves it against codes.
func SelectGeoCode(con Console, codes []string, fallback string) (geocode.Selection, error) {
	con.Printf("Please enter your 2 digit geo code. eg.) US\n\tYou may also just hit enter and we will default your geo code to %s", fallback)
	input, err := con.ReadLine()
	if err != nil {
		return geocode.Selection{}, err
	}
	con.Printf("You selected %s as your geo code.", input)

	sel := geocode.Select(codes, input, fallback)
	empty, invalid := fallbackMessages(fallback)
	switch sel.Outcome {
	case geocode.Empty:
		con.Print(empty)
	case geocode.Invalid:
		con.Print(invalid)
	}
	return sel, nil
}

// fallbackMessages names the country for the stock US fallback
func fallbackMessages(fallback string) (empty, invalid string) {
	if fallback == geocode.Default {
		return "You did not select a geo-code. Defaulted to United States (US)",
			"Your geo code was invalid.\n\tYour search has been defaulted to the United States"
	}
	return fmt.Sprintf("You did not select a geo-code. Defaulted to %s", fallback),
		fmt.Sprintf("Your geo code was invalid.\n\tYour search has been defaulted to %s", fallback)
}

// TrendsURL substitutes code into the trends query verbatim
func TrendsURL(base, code string) string {
	return base + code
}

// ScrapeTrends opens the trends page for code and prints the first two
// trending labels.
func ScrapeTrends(sess Session, con Console, base, code string) error {
	if err := sess.Navigate(TrendsURL(base, code)); err != nil {
		return err
	}

	topics, err := sess.Texts(TrendingLegend)
	if err != nil {
		return err
	}
	if len(topics) < 2 {
		return fmt.Errorf("%w: found %d", ErrTooFewTopics, len(topics))
	}

	for i, topic := range topics[:2] {
		con.Printf("[%s] #%d Trending is %s", code, i+1, topic)
	}
	return nil
}

// SubmitSearch prompts for free text and submits it through the search box.
func SubmitSearch(sess Session, con Console) error {
	con.Print("Please enter a custom search parameter. eg.) Music")
	query, err := con.ReadLine()
	if err != nil {
		return err
	}
	return sess.Submit(SearchInput, query)
}

// Shutdown waits for one key so the window stays open.
func Shutdown(con Console) error {
	con.Print("This concludes the trendscout session.")
	con.Println("Press any key to exit.")
	return con.ReadKey()
}
