package view

const pageTemplates = `
{{define "layout-head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Velvet Glow</title>
<link rel="stylesheet" href="/static/styles.css">
</head>
<body>
<nav class="navbar">
<a href="/" class="logo">Velvet Glow</a>
<ul class="nav-menu">
<li><a href="/">Home</a></li>
<li><a href="/pages/products">Products</a></li>
<li><a href="/pages/cart">Cart <span id="cart-count">{{.ItemCount}}</span></a></li>
</ul>
</nav>
{{end}}

{{define "layout-foot"}}</body>
</html>
{{end}}

{{define "product-card"}}
<div class="product-card" data-category="{{.Category}}">
<div class="product-image">
{{if .Image}}<img src="{{imagePath .Image}}" alt="{{.Name}}">{{else}}<i class="fas fa-{{icon .Category}} fa-3x"></i>{{end}}
</div>
<div class="product-info">
<div class="product-name">{{.Name}}</div>
<div class="product-category">{{capitalize .Category}}</div>
<div class="product-description">{{.Description}}</div>
<div class="product-price">{{price .Price}}</div>
{{if .InStock}}<button class="add-to-cart" data-product-id="{{.ID}}">Add to Cart</button>{{else}}<button class="add-to-cart" disabled>Out of Stock</button>{{end}}
</div>
</div>
{{end}}

{{define "home"}}{{template "layout-head" .}}
<section class="featured">
<h2>Featured Products</h2>
<div id="featured-products" class="product-grid">
{{range .Featured}}{{template "product-card" .}}{{end}}
</div>
</section>
<section class="newsletter">
<form class="newsletter-form" method="post" action="/api/v1/newsletter">
<input type="email" name="email" placeholder="Your email" required>
<button type="submit">Subscribe</button>
</form>
</section>
{{template "layout-foot" .}}{{end}}

{{define "products"}}{{template "layout-head" .}}
<section class="products-page">
<div class="filters">
<select id="category-filter" data-selected="{{.Category}}">
<option value="all">All Categories</option>
<option value="face">Face</option>
<option value="eyes">Eyes</option>
<option value="lips">Lips</option>
<option value="body">Body</option>
</select>
<input id="search-filter" type="text" value="{{.Search}}" placeholder="Search products">
<select id="sort-filter" data-selected="{{.Sort}}">
<option value="">Default</option>
<option value="name">Name</option>
<option value="price-low">Price: Low to High</option>
<option value="price-high">Price: High to Low</option>
</select>
</div>
{{if .Products}}
<div id="products-container" class="product-grid">
{{range .Products}}{{template "product-card" .}}{{end}}
</div>
{{else}}
<div class="no-products">
<h3>No products found</h3>
<p>Try a different category or search term.</p>
</div>
{{end}}
</section>
{{template "layout-foot" .}}{{end}}

{{define "cart"}}{{template "layout-head" .}}
<section class="cart-page">
<div class="page-header"><h1>Shopping Cart</h1></div>
{{if .Lines}}
<div class="cart-content">
<div id="cart-items" class="cart-items">
{{range .Lines}}
<div class="cart-item" data-product-id="{{.ProductID}}">
<div class="item-image"><i class="fas fa-{{icon .Category}} fa-2x"></i></div>
<div class="item-details">
<h4>{{.Name}}</h4>
<p class="item-category">{{capitalize .Category}}</p>
<p class="item-price">{{price .Price}} each</p>
</div>
<div class="quantity-controls">
<button class="qty-btn" data-delta="-1">-</button>
<span class="quantity">{{.Quantity}}</span>
<button class="qty-btn" data-delta="1">+</button>
</div>
<div class="item-total">{{price .LineTotal}}</div>
<button class="remove-btn">Remove</button>
</div>
{{end}}
</div>
<div class="cart-summary">
<h3>Order Summary</h3>
<div class="summary-line"><span>Subtotal</span><span id="subtotal">{{price .Subtotal}}</span></div>
<div class="summary-line"><span>Tax (8%)</span><span id="tax">{{price .Tax}}</span></div>
<div class="summary-line total"><span>Total</span><span id="total">{{price .Total}}</span></div>
<button id="checkout-btn" class="checkout-btn">Proceed to Checkout</button>
<a href="/pages/products" class="continue-shopping">Continue Shopping</a>
</div>
</div>
{{else}}
<div class="empty-cart">
<div class="empty-cart-content">
<h3>Your cart is empty</h3>
<p>Browse the catalog to find something you love.</p>
<a href="/pages/products" class="continue-shopping">Shop Products</a>
</div>
</div>
{{end}}
</section>
{{template "layout-foot" .}}{{end}}

{{define "confirmation"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.RedirectSeconds}};url={{.RedirectURL}}">
<title>Order Placed</title>
</head>
<body>
<div class="success-content">
<h2>Order Placed Successfully!</h2>
<p>Thank you for your purchase, {{.Order.Customer.FullName}}!</p>
<p>Order total: {{price .Order.Total}}</p>
<p>A confirmation email has been sent to {{.Order.Customer.Email}}</p>
<p>You will be redirected to the homepage shortly...</p>
</div>
</body>
</html>
{{end}}
`
