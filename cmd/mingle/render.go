package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"mingle-backend/internal/dto"
)

func printProfile(w io.Writer, p dto.ProfileResponse) {
	fmt.Fprintln(w, p.Name)
	if head := headline(p); head != "" {
		fmt.Fprintln(w, head)
	}
	if p.Bio != "" {
		fmt.Fprintln(w, p.Bio)
	}
	printList(w, "Skills", p.Skills)
	printList(w, "Looking for", p.LookingFor)
	printList(w, "Can help with", p.CanHelpWith)
	printList(w, "Domains", p.Domains)
	if p.LinkedInURL != nil {
		fmt.Fprintf(w, "LinkedIn: %s\n", *p.LinkedInURL)
	}
	fmt.Fprintf(w, "id: %s\n", p.ID)
}

func printProfileLine(w io.Writer, p dto.ProfileResponse) {
	line := fmt.Sprintf("%s  %s", p.ID, p.Name)
	if head := headline(p); head != "" {
		line += " - " + head
	}
	fmt.Fprintln(w, line)
}

func printMatch(w io.Writer, r dto.Ranking, p dto.ProfileResponse) {
	name := p.Name
	if name == "" {
		name = r.ContactID
	}
	fmt.Fprintf(w, "%3d%%  %s", int(math.Round(r.MatchScore*100)), name)
	if head := headline(p); head != "" {
		fmt.Fprintf(w, " (%s)", head)
	}
	fmt.Fprintln(w)
	if r.MatchReason != "" {
		fmt.Fprintf(w, "      why:   %s\n", r.MatchReason)
	}
	if r.OutreachAngle != "" {
		fmt.Fprintf(w, "      angle: %s\n", r.OutreachAngle)
	}
	fmt.Fprintf(w, "      id:    %s\n", r.ContactID)
}

func headline(p dto.ProfileResponse) string {
	switch {
	case p.Role != "" && p.Company != "":
		return p.Role + " @ " + p.Company
	case p.Role != "":
		return p.Role
	default:
		return p.Company
	}
}

func printList(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, strings.Join(items, ", "))
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
