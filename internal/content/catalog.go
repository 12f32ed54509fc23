// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"errors"
	"fmt"
	"strings"
)

// CatalogCategoryIDs is the fixed set of catalog sections. Both category
// lists of the catalog document must cover exactly these ids.
var CatalogCategoryIDs = []string{"painting", "photo", "textile", "pet-furniture", "collections"}

// CatalogHero is the heading block of the catalog landing page.
type CatalogHero struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
}

// CatalogPageCategoryItem is one section card on the catalog landing page.
type CatalogPageCategoryItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
	Href        string `json:"href,omitempty"`
}

// SubnavLink is one entry of a category page's sub-navigation.
type SubnavLink struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// CatalogCategoryPageItem holds the copy for one category's own page.
type CatalogCategoryPageItem struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Subnav      []SubnavLink `json:"subnav"`
}

// CatalogProductPage holds the flat string fields shared by every product
// detail page.
type CatalogProductPage struct {
	OrderButtonLabel string `json:"orderButtonLabel,omitempty"`
	PriceNote        string `json:"priceNote,omitempty"`
	DeliveryNote     string `json:"deliveryNote,omitempty"`
	CustomNote       string `json:"customNote,omitempty"`
}

// CatalogPageContent is the editable document behind the catalog pages.
type CatalogPageContent struct {
	Hero          CatalogHero               `json:"hero"`
	Categories    []CatalogPageCategoryItem `json:"categories"`
	CategoryPages []CatalogCategoryPageItem `json:"categoryPages"`
	ProductPage   CatalogProductPage        `json:"productPage"`
}

// ParseCatalogPageContent decodes and validates a catalog document. The
// two category lists must each cover the fixed id set exactly once.
func ParseCatalogPageContent(raw []byte) (*CatalogPageContent, error) {
	c := &CatalogPageContent{}
	if err := decode(raw, c); err != nil {
		return nil, fmt.Errorf("страница каталога: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("страница каталога: %w", err)
	}
	return c, nil
}

// IsCatalogPageContent reports whether raw is a valid catalog document.
func IsCatalogPageContent(raw []byte) bool {
	_, err := ParseCatalogPageContent(raw)
	return err == nil
}

func (c *CatalogPageContent) validate() error {
	if strings.TrimSpace(c.Hero.Title) == "" {
		return errors.New("заполните заголовок")
	}

	var catIDs, pageIDs []string
	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.Title) == "" {
			return fmt.Errorf("категория %d: не указано название", i+1)
		}
		catIDs = append(catIDs, strings.TrimSpace(cat.ID))
	}
	for i, p := range c.CategoryPages {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("страница категории %d: не указано название", i+1)
		}
		pageIDs = append(pageIDs, strings.TrimSpace(p.ID))
	}

	if err := coversCategoryIDs(catIDs); err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	if err := coversCategoryIDs(pageIDs); err != nil {
		return fmt.Errorf("categoryPages: %w", err)
	}
	return nil
}

// coversCategoryIDs checks that ids is exactly CatalogCategoryIDs as a set:
// no missing, no unknown, no duplicate entries.
func coversCategoryIDs(ids []string) error {
	seen := make(map[string]bool, len(CatalogCategoryIDs))
	for _, id := range ids {
		if !containsFold(CatalogCategoryIDs, id) {
			return fmt.Errorf("неизвестная категория %q", id)
		}
		key := strings.ToLower(id)
		if seen[key] {
			return fmt.Errorf("категория %q указана дважды", id)
		}
		seen[key] = true
	}
	for _, id := range CatalogCategoryIDs {
		if !seen[id] {
			return fmt.Errorf("отсутствует категория %q", id)
		}
	}
	return nil
}

// NormalizeCatalogPageContent returns a canonical copy: trimmed strings
// and sub-navigation entries with blank labels discarded.
func NormalizeCatalogPageContent(c *CatalogPageContent) *CatalogPageContent {
	out := &CatalogPageContent{
		Hero: CatalogHero{
			Title:       strings.TrimSpace(c.Hero.Title),
			Subtitle:    strings.TrimSpace(c.Hero.Subtitle),
			Description: strings.TrimSpace(c.Hero.Description),
		},
		ProductPage: CatalogProductPage{
			OrderButtonLabel: strings.TrimSpace(c.ProductPage.OrderButtonLabel),
			PriceNote:        strings.TrimSpace(c.ProductPage.PriceNote),
			DeliveryNote:     strings.TrimSpace(c.ProductPage.DeliveryNote),
			CustomNote:       strings.TrimSpace(c.ProductPage.CustomNote),
		},
		Categories:    make([]CatalogPageCategoryItem, 0, len(c.Categories)),
		CategoryPages: make([]CatalogCategoryPageItem, 0, len(c.CategoryPages)),
	}

	for _, cat := range c.Categories {
		out.Categories = append(out.Categories, CatalogPageCategoryItem{
			ID:          strings.ToLower(strings.TrimSpace(cat.ID)),
			Title:       strings.TrimSpace(cat.Title),
			Image:       strings.TrimSpace(cat.Image),
			Description: strings.TrimSpace(cat.Description),
			Href:        strings.TrimSpace(cat.Href),
		})
	}

	for _, p := range c.CategoryPages {
		n := CatalogCategoryPageItem{
			ID:          strings.ToLower(strings.TrimSpace(p.ID)),
			Title:       strings.TrimSpace(p.Title),
			Description: strings.TrimSpace(p.Description),
			Subnav:      make([]SubnavLink, 0, len(p.Subnav)),
		}
		for _, link := range p.Subnav {
			label := strings.TrimSpace(link.Label)
			if label == "" {
				continue
			}
			n.Subnav = append(n.Subnav, SubnavLink{Label: label, Href: strings.TrimSpace(link.Href)})
		}
		out.CategoryPages = append(out.CategoryPages, n)
	}

	return out
}

// CloneCatalogPageContent deep-copies a catalog document without
// normalizing it.
func CloneCatalogPageContent(c *CatalogPageContent) *CatalogPageContent {
	out := *c
	out.Categories = append([]CatalogPageCategoryItem(nil), c.Categories...)
	out.CategoryPages = make([]CatalogCategoryPageItem, len(c.CategoryPages))
	for i, p := range c.CategoryPages {
		cp := p
		cp.Subnav = append([]SubnavLink(nil), p.Subnav...)
		out.CategoryPages[i] = cp
	}
	return &out
}
