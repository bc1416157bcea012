package main

var regionNames = []string{"North", "South", "East", "West"}

var cityNames = []string{
	"Riverton", "Lakeside", "Hillcrest", "Maplewood", "Brookfield",
	"Fairview", "Oakdale", "Springfield", "Clearwater", "Ashford",
}

var managerFirstNames = []string{
	"Alex", "Jordan", "Morgan", "Riley", "Casey",
	"Taylor", "Jamie", "Drew", "Quinn", "Avery",
}

var managerLastNames = []string{
	"Nguyen", "Patel", "Garcia", "Kim", "Okafor",
	"Silva", "Novak", "Haddad", "Eriksen", "Costa",
}

var categoryNames = []string{
	"Produce", "Dairy", "Meat", "Bakery", "Beverages", "Frozen Foods",
}

var supplierNames = []string{
	"Greenfield Farms", "Valley Fresh Co", "Harbor Foods", "Summit Distribution",
	"Golden Harvest Ltd", "Northside Provisions", "Crestline Wholesale",
	"Bluebird Trading", "Stonebridge Supply", "Meridian Goods",
}

var productNames = []string{
	"Organic Apples", "Fresh Bananas", "Red Grapes", "Green Apples", "Fresh Oranges",
	"Crisp Lettuce", "Juicy Tomatoes", "Ripe Avocados", "Sweet Potatoes", "Fresh Spinach",
	"Potato Salad", "Whole Milk", "Greek Yogurt", "Cheddar Cheese", "Mozzarella Cheese",
	"Organic Butter", "Low-Fat Milk", "Cottage Cheese", "Sour Cream", "Cream Cheese",
	"Skim Milk", "Chicken Breast", "Ground Beef", "Pork Chops", "Turkey", "Lamb Chops",
	"Bacon", "Sausages", "Ham", "Steak", "Fish Fillet", "Whole Wheat Bread", "Baguette",
	"Croissant", "Bagel", "Muffins", "Donuts", "Sourdough Bread", "Pita Bread",
	"English Muffins", "Rye Bread", "Orange Juice", "Apple Juice", "Sparkling Water",
	"Cola", "Green Tea", "Black Tea", "Coffee", "Lemonade", "Iced Tea", "Mineral Water",
	"Frozen Pizza", "Ice Cream", "Frozen Vegetables", "Frozen Fruit", "Frozen French Fries",
	"Frozen Burritos", "Frozen Peas", "Frozen Corn", "Frozen Seafood", "Frozen Lasagna",
	"Organic Apples - Premium", "Fresh Bananas - Local", "Red Grapes - Imported",
	"Green Apples - Granny Smith", "Fresh Oranges - Valencia", "Crisp Lettuce - Romaine",
	"Juicy Tomatoes - Heirloom", "Ripe Avocados - Hass", "Sweet Potatoes - Organic",
	"Whole Milk - Organic", "Greek Yogurt - Strained", "Cheddar Cheese - Sharp",
	"Mozzarella Cheese - Fresh", "Organic Butter - Grassfed", "Low-Fat Milk - Skim",
	"Cottage Cheese - Low Fat", "Sour Cream - Regular", "Cream Cheese - Neufchatel",
	"Chicken Breast - Boneless", "Ground Beef - Lean", "Pork Chops - Bone In",
	"Turkey - Sliced", "Bacon - Smoked", "Sausages - Italian", "Ham - Honey Glazed",
	"Steak - Ribeye", "Fish Fillet - Cod", "Whole Wheat Bread - Artisan",
	"Baguette - French", "Croissant - Butter", "Bagel - Sesame", "Muffins - Blueberry",
	"Donuts - Glazed", "Sourdough Bread - Rustic", "Pita Bread - Whole Wheat",
	"Orange Juice - Fresh Squeezed", "Apple Juice - Clear", "Sparkling Water - Natural",
	"Cola - Classic", "Green Tea - Matcha", "Black Tea - Earl Grey", "Coffee - Dark Roast",
	"Lemonade - Fresh", "Iced Tea - Peach", "Mineral Water - Sparkling",
	"Frozen Pizza - Pepperoni", "Ice Cream - Vanilla", "Frozen Vegetables - Mixed",
	"Frozen Fruit - Berry Blend", "Frozen French Fries - Crispy", "Frozen Peas - Organic",
	"Frozen Corn - Sweet", "Frozen Seafood - Shrimp", "Frozen Lasagna - Meat",
	"Fresh Oranges - Navel", "Crisp Lettuce - Iceberg", "Juicy Tomatoes - Roma",
	"Whole Milk - 2%", "Greek Yogurt - Plain", "Cheddar Cheese - Mild",
	"Chicken Breast - Organic", "Ground Beef - Grassfed", "Steak - Filet Mignon",
	"Fish Fillet - Salmon", "Bagel - Everything", "Muffins - Chocolate Chip",
}

var customerFirstNames = []string{
	"Maria", "James", "Linda", "Robert", "Susan",
	"David", "Karen", "Michael", "Nancy", "John",
}

var customerLastNames = []string{
	"Lopez", "Smith", "Chen", "Brown", "Ali",
	"Johnson", "Sato", "Miller", "Ivanov", "Davis",
}

var wastageReasons = []string{
	"Expired", "Damaged in transit", "Spoiled", "Recalled", "Overstocked",
}

var inventoryLogReasons = []string{
	"Delivery received", "Sale", "Stock count adjustment", "Wastage", "Transfer",
}

var orderStatuses = []string{"Pending", "Shipped", "Delivered"}
