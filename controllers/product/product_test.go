package productcontroller

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kun-ahmadraza/Grocery-store/middleware"
	"github.com/kun-ahmadraza/Grocery-store/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.ProductImage{}); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	return db
}

func newRouter(db *gorm.DB, uploadsDir string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")
	r.Use(middleware.CurrentUser())
	r.GET("/Add_product", AddProductForm(db))
	r.POST("/Add_product", CreateProduct(db, uploadsDir))
	r.POST("/add-category", CreateCategory(db, uploadsDir))
	r.GET("/dashboard", Dashboard(db))
	r.GET("/dashboard/export", ExportProducts(db))
	r.POST("/delete_product/:id", DeleteProduct(db))
	return r
}

// productForm builds a multipart body with the given fields and one image
// part per filename.
func productForm(t *testing.T, fields map[string]string, imageNames []string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("writing field %s: %v", k, err)
		}
	}
	for _, name := range imageNames {
		part, err := mw.CreateFormFile("images", name)
		if err != nil {
			t.Fatalf("creating file part: %v", err)
		}
		part.Write([]byte("fake image bytes"))
	}
	mw.Close()
	return body, mw.FormDataContentType()
}

func TestCreateProductWithImages(t *testing.T) {
	db := newTestDB(t)
	uploads := t.TempDir()
	r := newRouter(db, uploads)

	body, contentType := productForm(t, map[string]string{
		"name":          "Frozen peas",
		"price":         "3.50",
		"stock":         "12",
		"description":   "Garden peas",
		"category_name": "Vegetables",
	}, []string{"peas.jpg", "peas.jpg"})

	req := httptest.NewRequest(http.MethodPost, "/Add_product", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var product models.Product
	if err := db.Preload("Images").First(&product).Error; err != nil {
		t.Fatalf("product not created: %v", err)
	}
	if product.Price != 3.50 || product.Stock != 12 {
		t.Fatalf("product fields mismatch: %+v", product)
	}
	if len(product.Images) != 2 {
		t.Fatalf("expected 2 image rows, got %d", len(product.Images))
	}
	// Identical client filenames must not collide on disk.
	if product.Images[0].ImageURL == product.Images[1].ImageURL {
		t.Fatalf("equal client filenames produced the same stored path %q", product.Images[0].ImageURL)
	}
}

func TestCreateProductMissingFields(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db, t.TempDir())

	body, contentType := productForm(t, map[string]string{"name": "No price"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/Add_product", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDeleteProductCascadesImages(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db, t.TempDir())

	product := models.Product{Name: "Ice cream", Price: 5}
	db.Create(&product)
	db.Create(&models.ProductImage{ProductID: product.ID, ImageURL: "static/uploads/a.jpg"})
	db.Create(&models.ProductImage{ProductID: product.ID, ImageURL: "static/uploads/b.jpg"})

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/delete_product/%d", product.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}

	var products, images int64
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.ProductImage{}).Count(&images)
	if products != 0 {
		t.Fatalf("product row not deleted")
	}
	if images != 0 {
		t.Fatalf("expected image rows deleted with the product, %d left", images)
	}
}

func TestDeleteProductNotFound(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db, t.TempDir())

	req := httptest.NewRequest(http.MethodPost, "/delete_product/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCreateCategoryRedirectsToProductForm(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db, t.TempDir())

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	mw.WriteField("category_name", "Vegetables")
	part, err := mw.CreateFormFile("category_image", "veg.png")
	if err != nil {
		t.Fatalf("creating file part: %v", err)
	}
	part.Write([]byte("fake image bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/add-category", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/Add_product" {
		t.Fatalf("expected redirect to /Add_product, got %q", loc)
	}

	var category models.Category
	if err := db.First(&category).Error; err != nil {
		t.Fatalf("category not created: %v", err)
	}
	if category.Name != "Vegetables" {
		t.Fatalf("category name mismatch: %q", category.Name)
	}
	if category.Image == "" {
		t.Fatal("category image path not recorded")
	}
}

func TestDashboardListsProductsAndImages(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db, t.TempDir())

	product := models.Product{Name: "Ice cream", Price: 5, CategoryName: "Desserts"}
	db.Create(&product)
	db.Create(&models.ProductImage{ProductID: product.ID, ImageURL: "static/uploads/a.jpg"})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Ice cream") {
		t.Fatal("product missing from dashboard")
	}
	if !strings.Contains(body, "static/uploads/a.jpg") {
		t.Fatal("product image missing from dashboard")
	}
}

func TestExportProducts(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db, t.TempDir())

	db.Create(&models.Product{Name: "Ice cream", Price: 5})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatal("empty export body")
	}
}
