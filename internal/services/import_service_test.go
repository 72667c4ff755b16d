package services_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/repos"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/services"
)

func TestImportCSVAddsAndSkips(t *testing.T) {
	db := memdb(t)
	phones := repos.NewPhoneRepo(db)
	svc := services.NewImportService(phones)

	csvData := strings.Join([]string{
		"Brand,Model,Storage,Color,Condition,Base_Price,Stock,Tags",
		"Apple,iPhone 11,64GB,Red,Good,250,3,refurbished",
		",iPhone 8,64GB,Gold,Good,90,1,",          // missing brand
		"Nokia,3310,,,Usable,15,2.0,classic",      // "2.0" stock is accepted
		"Sony,Xperia,64GB,Black,Mint,120,1,",      // bad condition
		"LG,G6,32GB,Silver,Good,,1,",              // blank price cell is not a number
	}, "\n")

	res, err := svc.ImportCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatal(err)
	}
	if res.Added != 2 || res.Skipped != 3 {
		t.Fatalf("want added=2 skipped=3, got %+v", res)
	}

	all, err := phones.List("nokia", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].Stock != 2 {
		t.Fatalf("nokia row should be imported with stock 2, got %+v", all)
	}
}

func TestImportCSVRejectsWrongHeader(t *testing.T) {
	db := memdb(t)
	svc := services.NewImportService(repos.NewPhoneRepo(db))

	_, err := svc.ImportCSV(strings.NewReader("brand,model\nApple,iPhone"))
	if err == nil || !strings.Contains(err.Error(), "csv headers must be exactly") {
		t.Fatalf("want header error, got %v", err)
	}
}

func TestExportCSVIncludesOverridesAndListings(t *testing.T) {
	db := memdb(t)
	phones := repos.NewPhoneRepo(db)
	listSvc := services.NewListingService(phones)
	svc := services.NewImportService(phones)

	if _, _, err := listSvc.Attempt("ph-sample-001", "X"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := svc.ExportCSV(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "id,brand,model,storage,color,condition,base_price,stock,tags,overrides_json,listings_json") {
		t.Fatalf("missing header: %s", out)
	}
	if !strings.Contains(out, "iPhone 12") || !strings.Contains(out, "444.44") {
		t.Fatalf("export should carry the listed sample phone: %s", out)
	}
}
