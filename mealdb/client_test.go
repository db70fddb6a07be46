package mealdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const mealJSON = `{"meals":[{
	"idMeal": "52874",
	"strMeal": "Beef Stew",
	"strCategory": "Beef",
	"strArea": "Italian",
	"strIngredient1": "Beef",
	"strMeasure1": "1kg",
	"strIngredient2": "",
	"strMeasure2": ""
}]}`

func TestRandomMeal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/random.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, mealJSON)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	rec, err := c.RandomMeal(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if rec.Str("idMeal") != "52874" {
		t.Errorf("idMeal = %q", rec.Str("idMeal"))
	}
	if rec.Str("strMeal") != "Beef Stew" {
		t.Errorf("strMeal = %q", rec.Str("strMeal"))
	}
}

func TestRandomMealBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	if _, err := c.RandomMeal(context.Background()); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestRandomMealMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"meals": `)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	if _, err := c.RandomMeal(context.Background()); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestRandomMealEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"meals": null}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	if _, err := c.RandomMeal(context.Background()); err == nil {
		t.Error("expected error for empty meals array")
	}
}

func TestRandomMealContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewClient("http://127.0.0.1:0", DefaultFetchInterval)
	if _, err := c.RandomMeal(ctx); err == nil {
		t.Error("expected error for canceled context")
	}
}
