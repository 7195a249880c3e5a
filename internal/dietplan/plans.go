package dietplan

type DietPlan struct {
	Goal string   `json:"goal"`
	Plan []string `json:"plan"`
}

const (
	plan1500 = "1500"
	plan1800 = "1800"
	plan2000 = "2000"
	plan2200 = "2200"
	plan2500 = "2500"
)

var dietPlans = map[string]DietPlan{
	plan1500: {
		Goal: "Weight Loss",
		Plan: []string{
			"Breakfast: Greek yogurt with berries and chia seeds or oatmeal with sliced banana",
			"Morning Snack: Apple with almond butter or a handful of mixed nuts",
			"Lunch: Grilled chicken salad with greens and vinaigrette or quinoa salad with chickpeas and cucumber",
			"Afternoon Snack: Cottage cheese with cucumber or carrot sticks with hummus",
			"Dinner: Baked salmon, asparagus, and quinoa or stir-fried tofu with broccoli and brown rice",
			"Evening Snack: Almonds or a small piece of dark chocolate",
		},
	},
	plan1800: {
		Goal: "Weight Maintenance",
		Plan: []string{
			"Breakfast: Scrambled eggs with spinach, whole-grain toast or smoothie with spinach and protein powder",
			"Morning Snack: Orange and walnuts or Greek yogurt with honey",
			"Lunch: Turkey wrap with hummus and veggies or lentil soup with whole-grain bread",
			"Afternoon Snack: Banana with peanut butter or rice cakes with avocado",
			"Dinner: Grilled chicken, sweet potato, and broccoli or baked tilapia with quinoa and green beans",
			"Evening Snack: Cottage cheese with berries or air-popped popcorn",
		},
	},
	plan2000: {
		Goal: "Moderate Weight Gain",
		Plan: []string{
			"Breakfast: Overnight oats with banana and peanut butter or avocado toast with eggs",
			"Morning Snack: Smoothie with protein powder or a protein bar",
			"Lunch: Brown rice bowl with black beans and salsa or chicken stir-fry with vegetables",
			"Afternoon Snack: Toast with cottage cheese and tomatoes or fruit salad",
			"Dinner: Steak, mashed potatoes, and green beans or chicken curry with brown rice",
			"Evening Snack: Greek yogurt with honey and pumpkin seeds or protein shake",
		},
	},
	plan2200: {
		Goal: "Active Weight Maintenance/Gain",
		Plan: []string{
			"Breakfast: Omelet with veggies and whole-grain toast or smoothie bowl with fruits and granola",
			"Morning Snack: Greek yogurt with granola and blueberries or nut butter on whole-grain bread",
			"Lunch: Tuna wrap with veggies or quinoa salad with chickpeas and feta",
			"Afternoon Snack: Apple and almonds or veggie sticks with hummus",
			"Dinner: Roasted chicken, brown rice, and carrots or fish tacos with cabbage slaw",
			"Evening Snack: Dark chocolate with walnuts or a handful of dried fruit",
		},
	},
	plan2500: {
		Goal: "High-Calorie for Weight Gain",
		Plan: []string{
			"Breakfast: Smoothie bowl with peanut butter and granola or pancakes with maple syrup",
			"Morning Snack: Crackers with cheese and apple or energy bites with oats and honey",
			"Lunch: Quinoa bowl with chickpeas and roasted veggies or burrito with beans and cheese",
			"Afternoon Snack: Protein bar or mixed nuts and dried fruit or yogurt with granola",
			"Dinner: Pasta with ground turkey and salad or lamb kebabs with rice and grilled vegetables",
			"Evening Snack: Cottage cheese with honey and mango or fruit and nut mix",
		},
	},
}
