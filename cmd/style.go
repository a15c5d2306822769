package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/bridge/application"
	"github.com/luca-patrignani/bridge/config"
	"github.com/luca-patrignani/bridge/domain/bridge"
	"github.com/luca-patrignani/bridge/domain/deck"
	"github.com/luca-patrignani/bridge/metrics"
)

var suitSymbols = [bridge.NumSuits]string{"♣", "♦", "♥", "♠"}

func suitSymbol(s bridge.Suit) string {
	if s == bridge.Hearts || s == bridge.Diamonds {
		return pterm.LightRed(suitSymbols[s])
	}
	return suitSymbols[s]
}

// handLines renders one line per suit, spades first.
func handLines(h bridge.Hand) []string {
	lines := make([]string, 0, bridge.NumSuits)
	for i := bridge.NumSuits - 1; i >= 0; i-- {
		s := bridge.Suits[i]
		var ranks strings.Builder
		for _, c := range h.Suit(s) {
			ranks.WriteString(c.Rank().String())
		}
		if ranks.Len() == 0 {
			ranks.WriteString("-")
		}
		lines = append(lines, suitSymbol(s)+" "+ranks.String())
	}
	return lines
}

func printHand(seat bridge.Seat, h bridge.Hand, dealer bool) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2)
	title := seat.String()
	if dealer {
		title = pterm.LightYellow(title + " (dealer)")
	}
	body := strings.Join(handLines(h), "\n")
	body += fmt.Sprintf("\nHCP: %d  Points: %d", h.HCPoints(), h.Points())
	return pbox.WithTitle(title).WithTitleTopLeft().Sprint(body)
}

func printDeal(d deck.Deal, dealer bridge.Seat) {
	box := func(s bridge.Seat) pterm.Panel {
		return pterm.Panel{Data: printHand(s, d.Hand(s), s == dealer)}
	}
	empty := pterm.Panel{Data: ""}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{empty, box(bridge.North)},
		{box(bridge.West), empty, box(bridge.East)},
		{empty, box(bridge.South)},
	}).Render()
}

// auctionTable lists the calls of res with the rule behind each one and,
// when available, the hands it shows.
func auctionTable(res application.Result) pterm.TableData {
	header := []string{"#", "Seat", "Call", "Rule"}
	if res.Meanings != nil {
		header = append(header, "Shows")
	}
	data := pterm.TableData{header}
	for i, call := range res.Calls() {
		bid := call.Bid.String()
		if !call.Bid.IsPass() {
			bid = pterm.LightCyan(bid)
		}
		row := []string{strconv.Itoa(i + 1), call.Seat.String(), bid, call.Rule}
		if res.Meanings != nil {
			shows := "?"
			if i < len(res.Meanings) && res.Meanings[i] != nil {
				shows = res.Meanings[i].String()
			}
			row = append(row, shows)
		}
		data = append(data, row)
	}
	return data
}

func contractLine(res application.Result) string {
	if res.Err != nil {
		return pterm.LightRed("Auction stopped: " + res.Err.Error())
	}
	bid, by, ok := res.Contract()
	if !ok {
		return pterm.LightYellow("Passed out")
	}
	return pterm.LightGreen(fmt.Sprintf("Contract %s by %s", bid, by))
}

func printResult(board int, res application.Result, cfg config.Config) {
	pterm.DefaultSection.Printfln("Board %d", board)
	if cfg.ShowHands {
		printDeal(res.Deal, res.Dealer)
	}
	if res.Transcript != nil && res.Transcript.Len() > 0 {
		if err := pterm.DefaultTable.WithHasHeader().WithData(auctionTable(res)).Render(); err != nil {
			pterm.Error.Println(err)
		}
	}
	pterm.Println(contractLine(res))
}

// summaryTable lists every counter sample, sorted by metric name.
func summaryTable(s metrics.Summary) pterm.TableData {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	data := pterm.TableData{{"Metric", "Label", "Value"}}
	for _, name := range names {
		for _, sample := range s[name] {
			data = append(data, []string{name, sample.Label, strconv.FormatFloat(sample.Value, 'f', -1, 64)})
		}
	}
	return data
}

func printSummary(s metrics.Summary) {
	pterm.DefaultSection.Println("Summary")
	if err := pterm.DefaultTable.WithHasHeader().WithData(summaryTable(s)).Render(); err != nil {
		pterm.Error.Println(err)
	}
}
